package palette

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestAssignLastOccurrenceWins(t *testing.T) {
	root := hierarchy.Build(hierarchy.Record{
		hierarchy.Group("a", hierarchy.Leaf("b", 1)),
		hierarchy.Leaf("a", 2),
	})

	m, err := Assign(root, Fixed("#111", "#222", "#333"), Hint{})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if c, _ := m.Color("a"); c != "#333" {
		t.Errorf("a = %q, want #333", c)
	}
	if c, _ := m.Color("b"); c != "#222" {
		t.Errorf("b = %q, want #222", c)
	}
	if _, ok := m.Color("root"); ok {
		t.Error("synthetic root should not be colored")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	want := []Swatch{{Name: "a", Color: "#333"}, {Name: "b", Color: "#222"}}
	if got := m.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestAssignRequestsOccurrenceCount(t *testing.T) {
	root := hierarchy.Build(hierarchy.Record{
		hierarchy.Group("x", hierarchy.Leaf("y", 1), hierarchy.Leaf("x", 1)),
		hierarchy.Group("y", hierarchy.Leaf("x", 1)),
	})

	var gotCount int
	var gotHint Hint
	gen := func(count int, hint Hint) []string {
		gotCount, gotHint = count, hint
		return Random(7)(count, hint)
	}
	if _, err := Assign(root, gen, Hint{}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if gotCount != 5 {
		t.Errorf("palette count = %d, want 5", gotCount)
	}
	if gotHint.Hue != DefaultHue {
		t.Errorf("hint = %q, want %q", gotHint.Hue, DefaultHue)
	}
}

func TestAssignEveryNameColored(t *testing.T) {
	rec := hierarchy.Record{
		hierarchy.Group("a", hierarchy.Group("b", hierarchy.Leaf("c", 1)), hierarchy.Leaf("d", 2)),
		hierarchy.Leaf("e", 3),
	}
	m, err := Assign(hierarchy.Build(rec), Random(1), Hint{Hue: HueGreen})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	for _, name := range rec.Keys() {
		c, ok := m.Color(name)
		if !ok {
			t.Errorf("%q has no color", name)
		}
		if !hexColor.MatchString(c) {
			t.Errorf("%q color = %q, want hex", name, c)
		}
	}
}

func TestAssignEmptyTree(t *testing.T) {
	called := false
	gen := func(int, Hint) []string {
		called = true
		return nil
	}
	m, err := Assign(hierarchy.Build(nil), gen, Hint{})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if m.Len() != 0 || len(m.Entries()) != 0 {
		t.Errorf("expected empty map, got %v", m.Entries())
	}
	if called {
		t.Error("generator should not be called for an empty tree")
	}
}

func TestAssignPaletteExhausted(t *testing.T) {
	root := hierarchy.Build(hierarchy.Record{hierarchy.Leaf("a", 1), hierarchy.Leaf("b", 1)})
	_, err := Assign(root, Fixed("#111"), Hint{})
	if !errors.Is(err, errors.ErrCodePaletteExhausted) {
		t.Errorf("err = %v, want %v", err, errors.ErrCodePaletteExhausted)
	}

	_, err = Assign(root, nil, Hint{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil generator err = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(42)(10, Hint{Hue: HueBlue})
	b := Random(42)(10, Hint{Hue: HueBlue})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different colors:\n%v\n%v", a, b)
	}
	c := Random(43)(10, Hint{Hue: HueBlue})
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical colors")
	}
	if got := Random(42)(0, Hint{}); len(got) != 0 {
		t.Errorf("count 0 returned %d colors", len(got))
	}
}

func TestRandomHueBand(t *testing.T) {
	tests := []struct {
		hue    string
		lo, hi float64
	}{
		{HueBlue, 179, 257},
		{HueGreen, 63, 178},
		{HuePink, 283, 334},
		{"unknown", 179, 257},
	}

	for _, tt := range tests {
		t.Run(tt.hue, func(t *testing.T) {
			for _, hex := range Random(9)(50, Hint{Hue: tt.hue}) {
				if !hexColor.MatchString(hex) {
					t.Fatalf("color %q is not hex", hex)
				}
				c, err := colorful.Hex(hex)
				if err != nil {
					t.Fatal(err)
				}
				h, s, _ := c.Hsv()
				if s < 0.05 {
					continue
				}
				// hex rounding shifts hue slightly
				if h < tt.lo-2 || h > tt.hi+2 {
					t.Errorf("hue of %s = %.1f, want within [%v, %v]", hex, h, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestRandomMonochrome(t *testing.T) {
	for _, hex := range Random(3)(20, Hint{Hue: HueMonochrome}) {
		c, _ := colorful.Hex(hex)
		if _, s, _ := c.Hsv(); s > 0.01 {
			t.Errorf("%s saturation = %v, want 0", hex, s)
		}
	}
}

func TestFixed(t *testing.T) {
	gen := Fixed("#111", "#222")
	if got := gen(1, Hint{}); !reflect.DeepEqual(got, []string{"#111"}) {
		t.Errorf("gen(1) = %v", got)
	}
	if got := gen(5, Hint{}); len(got) != 2 {
		t.Errorf("gen(5) returned %d colors, want 2", len(got))
	}
}

func TestValidateHue(t *testing.T) {
	for _, name := range append(HueNames(), "", "BLUE") {
		if err := ValidateHue(name); err != nil {
			t.Errorf("ValidateHue(%q) = %v", name, err)
		}
	}
	if err := ValidateHue("teal"); !errors.Is(err, errors.ErrCodeInvalidHue) {
		t.Errorf("ValidateHue(teal) = %v, want %v", err, errors.ErrCodeInvalidHue)
	}
}

func TestTextColor(t *testing.T) {
	tests := map[string]string{
		"#ffffff": "#333",
		"#000000": "#fff",
		"#1f3b8c": "#fff",
		"bogus":   "#fff",
	}
	for bg, want := range tests {
		if got := TextColor(bg); got != want {
			t.Errorf("TextColor(%q) = %q, want %q", bg, got, want)
		}
	}
}
