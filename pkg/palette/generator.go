package palette

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Generator returns count visually distinct colors as CSS hex strings.
// Implementations are expected to return exactly count colors; [Assign] treats
// a shorter answer as a contract violation.
type Generator func(count int, hint Hint) []string

// Random returns a generator drawing colors from the hinted HSV band.
// A non-zero seed makes every call reproducible; seed 0 draws a fresh
// sequence on each call.
func Random(seed uint64) Generator {
	return func(count int, hint Hint) []string {
		if count <= 0 {
			return nil
		}
		s := seed
		if s == 0 {
			s = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(s, s^0x5bd1e995))
		b := hint.band()

		colors := make([]string, count)
		for i := range colors {
			h := math.Mod(between(rng, b.hueMin, b.hueMax)+360, 360)
			c := colorful.Hsv(h, between(rng, b.satMin, b.satMax), between(rng, b.valMin, b.valMax))
			colors[i] = c.Clamped().Hex()
		}
		return colors
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Fixed returns a generator that hands out colors in the given order,
// ignoring the hint. It returns fewer colors than requested once the list
// runs out.
func Fixed(colors ...string) Generator {
	return func(count int, _ Hint) []string {
		return colors[:min(count, len(colors))]
	}
}

// TextColor returns a legible label color (dark or light) for text drawn
// on top of the background color bg. Unparseable colors get white text.
func TextColor(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "#fff"
	}
	if _, _, l := c.Hcl(); l > 0.7 {
		return "#333"
	}
	return "#fff"
}
