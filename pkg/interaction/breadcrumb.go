package interaction

import (
	"fmt"
	"strings"
)

// Breadcrumb is the geometry of one trail polygon: width, height, spacing
// between polygons and the depth of the arrow tip.
type Breadcrumb struct {
	W, H, S, T float64
}

// DefaultBreadcrumb matches the trail drawn above the chart.
var DefaultBreadcrumb = Breadcrumb{W: 100, H: 30, S: 10, T: 10}

// Point is a polygon vertex.
type Point struct {
	X, Y float64
}

// SlotX returns the horizontal offset of the slot at index.
func (b Breadcrumb) SlotX(index int) float64 {
	return float64(index) * (b.W + b.S)
}

// EndX returns the center of the percentage label placed after n crumbs.
func (b Breadcrumb) EndX(n int) float64 {
	return (float64(n) + 0.5) * (b.W + b.S)
}

// Width returns the total width of a trail of n crumbs plus its label.
func (b Breadcrumb) Width(n int) float64 {
	return float64(n+1) * (b.W + b.S)
}

// Points returns the polygon of the crumb at index, relative to its slot.
// Every crumb has an arrow tip on the right; all but the first also have a
// notch on the left.
func (b Breadcrumb) Points(index int) []Point {
	pts := []Point{
		{0, 0},
		{b.W, 0},
		{b.W + b.T, b.H / 2},
		{b.W, b.H},
		{0, b.H},
	}
	if index > 0 {
		pts = append(pts, Point{b.T, b.H / 2})
	}
	return pts
}

// PointsAttr formats [Breadcrumb.Points] for an SVG polygon.
func (b Breadcrumb) PointsAttr(index int) string {
	var sb strings.Builder
	for i, p := range b.Points(index) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g,%g", p.X, p.Y)
	}
	return sb.String()
}

// LabelAt returns the position of the crumb text relative to its slot.
func (b Breadcrumb) LabelAt() Point {
	return Point{(b.W + b.T) / 2, b.H / 2}
}
