package styles

import (
	"math"
	"strings"
	"testing"
)

func TestArcPath(t *testing.T) {
	tests := []struct {
		name                     string
		start, end, inner, outer float64
		want                     string
	}{
		{
			name:  "QuarterAnnulus",
			start: 0, end: math.Pi / 2, inner: 50, outer: 100,
			want: "M0,-100 A100,100 0 0,1 100,0 L50,0 A50,50 0 0,0 0,-50 Z",
		},
		{
			name:  "PieSlice",
			start: 0, end: math.Pi / 2, inner: 0, outer: 10,
			want: "M0,-10 A10,10 0 0,1 10,0 L0,0 Z",
		},
		{
			name:  "LargeArc",
			start: 0, end: 3 * math.Pi / 2, inner: 5, outer: 10,
			want: "M0,-10 A10,10 0 1,1 -10,0 L-5,0 A5,5 0 1,0 0,-5 Z",
		},
		{
			name:  "FullRing",
			start: 0, end: 2 * math.Pi, inner: 5, outer: 10,
			want: "M0,-10 A10,10 0 1,1 0,10 A10,10 0 1,1 0,-10 M0,-5 A5,5 0 1,0 0,5 A5,5 0 1,0 0,-5 Z",
		},
		{
			name:  "FullDisc",
			start: 0, end: 2 * math.Pi, inner: 0, outer: 10,
			want: "M0,-10 A10,10 0 1,1 0,10 A10,10 0 1,1 0,-10 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArcPath(tt.start, tt.end, tt.inner, tt.outer); got != tt.want {
				t.Errorf("ArcPath() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestArcPathSwapsReversedInput(t *testing.T) {
	a := ArcPath(0, 1, 2, 3)
	b := ArcPath(1, 0, 3, 2)
	if a != b {
		t.Errorf("reversed input differs:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "M0,-3") {
		t.Errorf("path should start at twelve o'clock on the outer radius: %s", a)
	}
}

func TestCentroid(t *testing.T) {
	x, y := Centroid(0, math.Pi, 1, 3)
	if math.Abs(x-2) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("Centroid() = (%v, %v), want (2, 0)", x, y)
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		-0.0001:   "0",
		1.5:       "1.5",
		100:       "100",
		-12.34567: "-12.346",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
