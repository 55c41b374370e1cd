// Package styles provides visual styles for sunburst rendering.
//
// A [Style] paints the primitives the SVG sink positions: partition arcs,
// breadcrumb polygons, the percentage label and legend swatches. [Simple] is
// the default flat style.
//
// [ArcPath] produces the SVG path data for an annular sector:
//
//	d := styles.ArcPath(0, math.Pi/2, 50, 100)
//	// M0,-100 A100,100 0 0,1 100,0 L50,0 A50,50 0 0,0 0,-50 Z
package styles
