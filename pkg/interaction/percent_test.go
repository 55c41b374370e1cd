package interaction

import "testing"

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		value, total float64
		want         string
	}{
		{10, 40, "25.0%"},
		{40, 40, "100%"},
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
		{1, 8, "12.5%"},
		{1, 100, "1.00%"},
		{1, 1000, "0.100%"},
		{5, 10000, BelowThreshold},
		{9996, 10000000, "0.100%"},
		{9994, 10000000, BelowThreshold},
		{0, 10, BelowThreshold},
		{9996, 10000, "100%"},
		{314159, 10000000, "3.14%"},
		{1, 0, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercentage(tt.value, tt.total); got != tt.want {
			t.Errorf("FormatPercentage(%v, %v) = %q, want %q", tt.value, tt.total, got, tt.want)
		}
	}
}

func TestToPrecision(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{25, "25.0"},
		{0.5, "0.500"},
		{1234, "1.23e+3"},
		{0.00000012345, "1.23e-7"},
		{999.6, "1.00e+3"},
	}
	for _, tt := range tests {
		if got := toPrecision(tt.x, 3); got != tt.want {
			t.Errorf("toPrecision(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestBreadcrumbGeometry(t *testing.T) {
	b := DefaultBreadcrumb
	if got := b.PointsAttr(0); got != "0,0 100,0 110,15 100,30 0,30" {
		t.Errorf("PointsAttr(0) = %q", got)
	}
	if got := b.PointsAttr(1); got != "0,0 100,0 110,15 100,30 0,30 10,15" {
		t.Errorf("PointsAttr(1) = %q", got)
	}
	if b.SlotX(3) != 330 {
		t.Errorf("SlotX(3) = %v, want 330", b.SlotX(3))
	}
	if b.EndX(0) != 55 {
		t.Errorf("EndX(0) = %v, want 55", b.EndX(0))
	}
	if b.Width(2) != 330 {
		t.Errorf("Width(2) = %v, want 330", b.Width(2))
	}
	if p := b.LabelAt(); p != (Point{55, 15}) {
		t.Errorf("LabelAt() = %v", p)
	}
}
