// Package render converts rendered sunburst charts between output formats.
//
// The chart itself is drawn as SVG by the [sunburst/sink] subpackage. [ToPDF]
// and [ToPNG] convert that SVG using the external rsvg-convert tool (from
// librsvg):
//
//	svg := sink.RenderSVG(layout, colors)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Visual styles live in [sunburst/styles].
package render
