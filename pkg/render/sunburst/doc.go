// Package sunburst groups the sunburst chart renderers.
//
// The geometry comes from [partition.Layout] and the hover state from
// [interaction.State]; this package tree only paints them:
//
//   - [sink]: output formats (SVG, HTML, JSON, PNG, PDF)
//   - [styles]: how arcs, breadcrumbs and legend entries look
//
// Angles follow the usual chart convention: zero at twelve o'clock,
// increasing clockwise.
package sunburst
