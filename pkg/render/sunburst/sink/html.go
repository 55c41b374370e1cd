package sink

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
)

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title   string
	svgOpts []SVGOption
}

// WithTitle sets the page title.
func WithTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// WithHTMLSVGOptions passes options through to the embedded SVG.
func WithHTMLSVGOptions(opts ...SVGOption) HTMLOption {
	return func(r *htmlRenderer) { r.svgOpts = opts }
}

var pageTemplate = template.Must(template.New("page").Parse(htmlTemplate))

// RenderHTML renders a standalone page holding the interactive chart with its
// breadcrumb trail and a legend that can be toggled.
func RenderHTML(l *partition.Layout, colors palette.ColorMap, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "Sunburst"}
	for _, opt := range opts {
		opt(&r)
	}

	svgOpts := append([]SVGOption{WithTrail(), WithLegend(), WithInteraction()}, r.svgOpts...)
	svg := RenderSVG(l, colors, svgOpts...)

	data := struct {
		Title string
		SVG   template.HTML
	}{
		Title: r.title,
		SVG:   template.HTML(svg),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { margin: 2em; font-family: sans-serif; color: #333; }
        h1 { font-size: 1.2em; font-weight: 600; }
        .controls { margin-bottom: 1em; }
        body.no-legend #legend { visibility: hidden; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="controls">
        <label><input type="checkbox" id="toggle-legend" checked> Legend</label>
    </div>
    {{.SVG}}
    <script>
        document.getElementById('toggle-legend').addEventListener('change', e => {
            document.body.classList.toggle('no-legend', !e.target.checked);
        });
    </script>
</body>
</html>
`
