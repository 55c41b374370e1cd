package styles

import (
	"fmt"
	"math"
	"strings"
)

// fullCircle is the span from which an arc is drawn as a complete ring.
const fullCircle = 2*math.Pi - 1e-6

// ArcPath returns SVG path data for an annular sector centered at the origin.
// Angles are in radians, clockwise from twelve o'clock. An inner radius of
// zero produces a pie slice; a span of a full turn produces a ring.
func ArcPath(start, end, inner, outer float64) string {
	if end < start {
		start, end = end, start
	}
	inner, outer = max(0, min(inner, outer)), max(inner, outer)
	span := end - start

	var sb strings.Builder
	if span >= fullCircle {
		fmt.Fprintf(&sb, "M0,%s A%s,%s 0 1,1 0,%s A%s,%s 0 1,1 0,%s",
			num(-outer), num(outer), num(outer), num(outer), num(outer), num(outer), num(-outer))
		if inner > 0 {
			fmt.Fprintf(&sb, " M0,%s A%s,%s 0 1,0 0,%s A%s,%s 0 1,0 0,%s",
				num(-inner), num(inner), num(inner), num(inner), num(inner), num(inner), num(-inner))
		}
		sb.WriteString(" Z")
		return sb.String()
	}

	large := 0
	if span > math.Pi {
		large = 1
	}
	x0, y0 := polar(outer, start)
	x1, y1 := polar(outer, end)
	fmt.Fprintf(&sb, "M%s,%s A%s,%s 0 %d,1 %s,%s", num(x0), num(y0), num(outer), num(outer), large, num(x1), num(y1))
	if inner > 0 {
		x2, y2 := polar(inner, end)
		x3, y3 := polar(inner, start)
		fmt.Fprintf(&sb, " L%s,%s A%s,%s 0 %d,0 %s,%s", num(x2), num(y2), num(inner), num(inner), large, num(x3), num(y3))
	} else {
		sb.WriteString(" L0,0")
	}
	sb.WriteString(" Z")
	return sb.String()
}

// Centroid returns the middle point of the sector, useful for labels.
func Centroid(start, end, inner, outer float64) (x, y float64) {
	return polar((inner+outer)/2, (start+end)/2)
}

func polar(r, angle float64) (x, y float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
