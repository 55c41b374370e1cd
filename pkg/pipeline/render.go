package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/sink"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
)

// Render generates output artifacts in the requested formats. A non-nil
// state is painted as a hover snapshot.
func Render(ctx context.Context, l *partition.Layout, colors palette.ColorMap, state *interaction.State, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	svgOpts := buildSVGOptions(state, opts)
	artifacts = make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, colors, svgOpts...)
		case FormatHTML:
			data, err = sink.RenderHTML(l, colors,
				sink.WithTitle(opts.Title),
				sink.WithHTMLSVGOptions(svgOpts...))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, colors,
				sink.WithScale(opts.Scale),
				sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, colors, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithJSONPalette(opts.Seed, opts.Hue)}
			if state != nil {
				jsonOpts = append(jsonOpts, sink.WithJSONState(state))
			}
			data, err = sink.RenderJSON(l, colors, jsonOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds the SVG options shared by every image format.
func buildSVGOptions(state *interaction.State, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithSize(opts.Width, opts.Height),
		sink.WithStyle(styleFor(opts.Style)),
	}
	if opts.Trail || opts.Interactive {
		svgOpts = append(svgOpts, sink.WithTrail())
	}
	if opts.Legend {
		svgOpts = append(svgOpts, sink.WithLegend())
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	if state != nil {
		svgOpts = append(svgOpts, sink.WithState(state))
	}
	return svgOpts
}

var styleRegistry = map[string]styles.Style{
	StyleSimple: styles.Simple{},
}

func styleFor(name string) styles.Style {
	if s, ok := styleRegistry[name]; ok {
		return s
	}
	return styles.Simple{}
}
