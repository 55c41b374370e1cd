// Package sink renders a sunburst layout to output formats.
//
// [RenderSVG] paints the visible arcs of a [partition.Layout], colored by a
// [palette.ColorMap]. Optional parts are switched on with [SVGOption]s:
//
//   - [WithTrail]: the breadcrumb trail above the chart
//   - [WithLegend]: one swatch per colored name, in legend order
//   - [WithInteraction]: an embedded script that replays hover and leave in
//     the browser (fade, trail update keyed by name and depth)
//   - [WithState]: a static snapshot of an [interaction.State]
//
// [RenderHTML] wraps the interactive SVG in a standalone page, [RenderJSON]
// exports the geometry, and [RenderPNG]/[RenderPDF] convert the SVG through
// rsvg-convert.
package sink
