package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RecordHash: cache.Hash(opts.Input),
	}

	// Stage 1: Build
	buildStart := time.Now()
	root, err := Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Tree = root
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = root.Count()

	r.Logger.Info("built hierarchy",
		"source", opts.Source,
		"record", cache.ShortHash(result.RecordHash),
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, colors, err := ComputeLayout(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Colors = colors
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.VisibleCount = len(l.Visible())

	r.Logger.Info("computed layout",
		"visible", result.Stats.VisibleCount,
		"colors", colors.Len(),
		"duration", result.Stats.LayoutTime)

	if len(opts.Path) > 0 {
		state := interaction.New(l)
		if _, err := state.HoverPath(opts.Path...); err != nil {
			return nil, fmt.Errorf("hover: %w", err)
		}
		result.State = state
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache returns cached artifacts when every requested format is
// stored, and renders and stores all of them otherwise.
func (r *Runner) renderWithCache(ctx context.Context, res *Result, opts Options) (map[string][]byte, bool, error) {
	hooks := observability.Cache()

	if opts.Cacheable() {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(res.RecordHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, "artifact")
				break
			}
			hooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, res.Layout, res.Colors, res.State, opts)
	if err != nil {
		return nil, false, err
	}

	if opts.Cacheable() {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(res.RecordHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
				r.Logger.Warn("cache write failed", "format", format, "error", err)
				continue
			}
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// HoverResult is the serializable outcome of hovering a node path.
type HoverResult struct {
	Path        []string          `json:"path"`
	NodeID      int               `json:"node_id"`
	Value       float64           `json:"value"`
	Percentage  string            `json:"percentage"`
	Chain       []int             `json:"chain"`
	Highlighted []int             `json:"highlighted"`
	Trail       interaction.Trail `json:"trail"`
}

// Hover builds the layout of opts.Input and hovers the node at opts.Path.
// Hover results do not depend on the palette and are cached by path and
// pruning threshold alone.
func (r *Runner) Hover(ctx context.Context, opts Options) (*HoverResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForBuild(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errors.ValidateNodePath(opts.Path); err != nil {
		return nil, err
	}

	hooks := observability.Cache()
	key := r.Keyer.HoverKey(cache.Hash(opts.Input), opts.HoverKeyOpts())
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached HoverResult
			if err := json.Unmarshal(data, &cached); err == nil {
				hooks.OnCacheHit(ctx, "hover")
				return &cached, nil
			}
			// If deserialization fails, fall through to recompute
		}
		hooks.OnCacheMiss(ctx, "hover")
	}

	root, err := Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	l, _, err := ComputeLayout(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	state := interaction.New(l)
	res, err := state.HoverPath(opts.Path...)
	if err != nil {
		return nil, err
	}
	out := NewHoverResult(opts.Path, res)

	if !opts.NoCache {
		if data, err := json.Marshal(out); err == nil {
			if err := r.Cache.Set(ctx, key, data, cache.HoverTTL); err == nil {
				hooks.OnCacheSet(ctx, "hover", len(data))
			}
		}
	}
	return out, nil
}

// NewHoverResult flattens an interaction result into its serializable form.
// Highlighted ids are sorted; layout ids are pre-order, so ancestors come first.
func NewHoverResult(path []string, res interaction.Result) *HoverResult {
	out := &HoverResult{
		Path:        append([]string{}, path...),
		NodeID:      res.Node.ID,
		Value:       res.Node.Value,
		Percentage:  res.Percentage,
		Chain:       append([]int{}, res.Chain...),
		Highlighted: make([]int, 0, len(res.Highlighted)),
		Trail:       res.Trail,
	}
	for id := range res.Highlighted {
		out.Highlighted = append(out.Highlighted, id)
	}
	slices.Sort(out.Highlighted)
	return out
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
