package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/sink"
)

// ComputeLayout assigns legend colors and partitions root for the chart frame.
// The area scale is the squared outer radius, so radial bands come out in
// pixels² and sinks may draw them directly.
func ComputeLayout(ctx context.Context, root *hierarchy.Node, opts Options) (l *partition.Layout, colors palette.ColorMap, err error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, palette.ColorMap{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, root.Count())
	start := time.Now()
	defer func() {
		visible := 0
		if l != nil {
			visible = len(l.Visible())
		}
		hooks.OnLayoutComplete(ctx, visible, time.Since(start), err)
	}()

	colors, err = palette.Assign(root, palette.Random(opts.Seed), palette.Hint{Hue: opts.Hue})
	if err != nil {
		return nil, palette.ColorMap{}, fmt.Errorf("assign colors: %w", err)
	}

	r := sink.Radius(opts.Width, opts.Height)
	l = partition.New(root,
		partition.WithAreaScale(r*r),
		partition.WithEpsilon(opts.Epsilon),
	)
	opts.Logger.Debug("partitioned hierarchy",
		"nodes", l.Len(),
		"max_depth", l.MaxDepth(),
		"total", l.Total(),
		"legend", colors.Len())

	return l, colors, nil
}
