// Package pkg provides the core libraries for sunburst charts.
//
// # Overview
//
// A sunburst draws a nested keyed count record as concentric rings: each
// node is an arc whose angle is proportional to its share of the total and
// whose ring is its depth. The pkg directory is organized into:
//
//  1. Domain logic: [hierarchy], [palette], [partition], [interaction]
//  2. Rendering: [render] and its sunburst sinks and styles
//  3. Orchestration: [pipeline] (decode, build, color, layout, render)
//  4. Infrastructure: [cache], [config], [errors], [observability]
//
// # Data Flow
//
//	{"result": {...}} record (JSON or YAML)
//	         ↓
//	    [hierarchy] (ordered record, tree)
//	         ↓
//	    [palette] (name → color)  +  [partition] (angles, radii, pruning)
//	         ↓
//	    [interaction] (hover, ancestor chain, breadcrumb trail)
//	         ↓
//	    SVG/HTML/PNG/PDF/JSON output
//
// # Quick Start
//
//	rec, _ := hierarchy.DecodeJSON(data)
//	root := hierarchy.Build(rec)
//	colors, _ := palette.Assign(root, palette.Random(7), palette.Hint{Hue: "blue"})
//	l := partition.New(root)
//	res, _ := interaction.New(l).HoverPath("web", "api")
//	fmt.Println(res.Percentage)
//
// Most callers use [pipeline.Runner], which adds validation, caching and
// observability hooks on top of these steps.
//
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/hierarchy
// [palette]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/palette
// [partition]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/partition
// [interaction]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/interaction
// [render]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/observability
package pkg
