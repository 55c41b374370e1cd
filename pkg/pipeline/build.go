package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/observability"
)

// Build decodes opts.Input and constructs the hierarchy.
func Build(ctx context.Context, opts Options) (root *hierarchy.Node, err error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Source)
	start := time.Now()
	defer func() {
		n := 0
		if root != nil {
			n = root.Count()
		}
		hooks.OnBuildComplete(ctx, opts.Source, n, time.Since(start), err)
	}()

	rec, err := hierarchy.Decode(opts.Input, opts.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", opts.Source, err)
	}
	opts.Logger.Debug("decoded record", "source", opts.Source, "format", opts.InputFormat, "entries", len(rec))

	return hierarchy.Build(rec), nil
}
