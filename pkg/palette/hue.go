package palette

import (
	"slices"
	"strings"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// Hint steers the generator towards a family of colors.
type Hint struct {
	Hue string
}

// DefaultHue is the hue family used when no hint is given.
const DefaultHue = "blue"

// Hue hint names.
const (
	HueRed        = "red"
	HueOrange     = "orange"
	HueYellow     = "yellow"
	HueGreen      = "green"
	HueBlue       = "blue"
	HuePurple     = "purple"
	HuePink       = "pink"
	HueMonochrome = "monochrome"
	HueRandom     = "random"
)

// band is a range of hue degrees plus the saturation/value window drawn from.
type band struct {
	hueMin, hueMax float64
	satMin, satMax float64
	valMin, valMax float64
}

// hues lists the accepted hint names with their bands. Hue ranges may start
// below zero and wrap around the color wheel.
var hues = map[string]band{
	HueRed:        {hueMin: -26, hueMax: 18, satMin: 0.45, satMax: 1, valMin: 0.55, valMax: 1},
	HueOrange:     {hueMin: 19, hueMax: 46, satMin: 0.45, satMax: 1, valMin: 0.7, valMax: 1},
	HueYellow:     {hueMin: 47, hueMax: 62, satMin: 0.45, satMax: 1, valMin: 0.75, valMax: 1},
	HueGreen:      {hueMin: 63, hueMax: 178, satMin: 0.3, satMax: 1, valMin: 0.5, valMax: 0.95},
	HueBlue:       {hueMin: 179, hueMax: 257, satMin: 0.3, satMax: 1, valMin: 0.5, valMax: 0.95},
	HuePurple:     {hueMin: 258, hueMax: 282, satMin: 0.3, satMax: 1, valMin: 0.45, valMax: 0.95},
	HuePink:       {hueMin: 283, hueMax: 334, satMin: 0.3, satMax: 1, valMin: 0.55, valMax: 1},
	HueMonochrome: {hueMin: 0, hueMax: 0, satMin: 0, satMax: 0, valMin: 0.2, valMax: 0.9},
	HueRandom:     {hueMin: 0, hueMax: 360, satMin: 0.3, satMax: 1, valMin: 0.5, valMax: 1},
}

// HueNames returns the accepted hint names in sorted order.
func HueNames() []string {
	names := make([]string, 0, len(hues))
	for name := range hues {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateHue reports whether name is an accepted hint. The empty string
// selects [DefaultHue].
func ValidateHue(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := hues[strings.ToLower(name)]; !ok {
		return errors.New(errors.ErrCodeInvalidHue, "unknown hue %q (must be one of %s)", name, strings.Join(HueNames(), ", "))
	}
	return nil
}

func (h Hint) band() band {
	if b, ok := hues[strings.ToLower(h.Hue)]; ok {
		return b
	}
	return hues[DefaultHue]
}
