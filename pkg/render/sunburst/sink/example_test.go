package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/sink"
)

func ExampleRenderSVG() {
	root := hierarchy.Build(hierarchy.Record{
		hierarchy.Group("x", hierarchy.Leaf("y", 10), hierarchy.Leaf("z", 30)),
	})
	colors, _ := palette.Assign(root, palette.Fixed("#1f77b4", "#aec7e8", "#6baed6"), palette.Hint{})
	l := partition.New(root)

	svg := string(sink.RenderSVG(l, colors, sink.WithSize(300, 300), sink.WithLegend()))
	fmt.Println("arcs:", strings.Count(svg, `class="arc"`))
	fmt.Println("legend:", strings.Count(svg, `class="legend-item"`))
	// Output:
	// arcs: 3
	// legend: 3
}
