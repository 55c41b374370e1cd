// Package palette assigns a color to every node name of a hierarchy.
//
// Colors come from a [Generator], an injected capability that returns N
// visually distinct colors for a hue hint. [Random] draws them from a seeded
// HSV band, [Fixed] replays a given list (useful in tests).
//
// [Assign] walks the tree once in depth-first pre-order, requests exactly as
// many colors as names it visited (repeats included), and zips them onto the
// names. When a name occurs several times, the color of its last occurrence
// wins:
//
//	names:   a    b    a
//	colors:  #111 #222 #333
//	result:  a -> #333, b -> #222
//
// The resulting [ColorMap] is a plain value rebuilt on every render. Nothing in
// this package holds process-wide state.
package palette
