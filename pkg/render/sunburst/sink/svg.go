package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
)

// Frame defaults: the chart is 0.6 times as tall as it is wide.
const (
	DefaultWidth = 750.0
	heightRatio  = 0.6
	trailHeight  = 50.0
	legendGap    = 20.0
	defaultFill  = "#ccc"

	crumbFontSize = 12.0
)

const interactionJS = `
    const b = {w: %g, h: %g, s: %g, t: %g};
    const chart = document.getElementById('chart');
    const trail = document.getElementById('trail');
    const arcs = () => document.querySelectorAll('.arc');
    function points(i) {
      const p = ['0,0', b.w + ',0', (b.w + b.t) + ',' + (b.h / 2), b.w + ',' + b.h, '0,' + b.h];
      if (i > 0) p.push(b.t + ',' + (b.h / 2));
      return p.join(' ');
    }
    function crumb(a, i) {
      const ns = 'http://www.w3.org/2000/svg';
      const g = document.createElementNS(ns, 'g');
      g.setAttribute('class', 'crumb');
      g.dataset.key = a.dataset.name + '@' + a.dataset.depth;
      const poly = document.createElementNS(ns, 'polygon');
      poly.setAttribute('points', points(i));
      poly.setAttribute('fill', a.getAttribute('fill'));
      const text = document.createElementNS(ns, 'text');
      text.setAttribute('x', (b.w + b.t) / 2);
      text.setAttribute('y', b.h / 2);
      text.setAttribute('dy', '0.35em');
      text.setAttribute('text-anchor', 'middle');
      text.textContent = a.dataset.label;
      g.append(poly, text);
      return g;
    }
    function hover(el) {
      const chain = el.dataset.chain.split(' ').map(id => document.getElementById('arc-' + id)).filter(Boolean);
      arcs().forEach(a => a.style.opacity = %g);
      chain.forEach(a => a.style.opacity = 1);
      if (!trail) return;
      const slots = new Map();
      trail.querySelectorAll('g.crumb').forEach(g => slots.set(g.dataset.key, g));
      const keep = new Set();
      chain.forEach((a, i) => {
        const key = a.dataset.name + '@' + a.dataset.depth;
        keep.add(key);
        let g = slots.get(key);
        if (!g) { g = crumb(a, i); trail.insertBefore(g, trail.querySelector('.endlabel')); }
        g.setAttribute('transform', 'translate(' + i * (b.w + b.s) + ', 0)');
      });
      slots.forEach((g, key) => { if (!keep.has(key)) g.remove(); });
      const end = trail.querySelector('.endlabel');
      end.setAttribute('x', (chain.length + 0.5) * (b.w + b.s));
      end.textContent = el.dataset.pct;
      trail.style.visibility = '';
    }
    function leave() {
      if (trail) trail.style.visibility = 'hidden';
      arcs().forEach(a => a.style.opacity = 1);
    }
    arcs().forEach(a => a.addEventListener('mouseover', () => hover(a)));
    chart.addEventListener('mouseleave', leave);`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	width       float64
	height      float64
	trail       bool
	legend      bool
	interactive bool
	state       *interaction.State
	crumbs      interaction.Breadcrumb
	swatch      styles.Legend
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTrail() SVGOption               { return func(r *svgRenderer) { r.trail = true } }
func WithLegend() SVGOption              { return func(r *svgRenderer) { r.legend = true } }
func WithInteraction() SVGOption         { return func(r *svgRenderer) { r.interactive = true } }

// WithSize sets the chart frame. A zero height derives it from the width.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithState paints a snapshot of s: faded segments and, if the trail is
// visible, the breadcrumbs of the current hover. States bound to another
// layout are ignored.
func WithState(s *interaction.State) SVGOption {
	return func(r *svgRenderer) {
		r.state = s
		if s != nil {
			r.crumbs = s.Geometry()
		}
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:  styles.Simple{},
		crumbs: interaction.DefaultBreadcrumb,
		swatch: styles.DefaultLegend,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.height <= 0 {
		r.height = r.width * heightRatio
	}
	return r
}

// Radius returns the outer radius of a chart drawn in a width x height frame.
func Radius(width, height float64) float64 {
	return min(width, height) / 2
}

// RenderSVG renders the visible arcs of l as a standalone SVG document.
func RenderSVG(l *partition.Layout, colors palette.ColorMap, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	state := r.state
	if state != nil && state.Layout() != l {
		state = nil
	}

	top := 0.0
	if r.trail {
		top = trailHeight
	}
	totalW := r.width
	totalH := top + r.height
	if r.legend {
		totalW += legendGap + r.swatch.W
		totalH = max(totalH, top+r.swatch.Height(colors.Len()))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	r.style.RenderDefs(&buf)

	if r.trail {
		renderTrail(&buf, &r, l, colors, state)
	}
	renderChart(&buf, &r, l, colors, state, top)
	if r.legend {
		renderLegend(&buf, &r, colors, top)
	}
	if r.interactive {
		renderInteraction(&buf, &r)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderChart(buf *bytes.Buffer, r *svgRenderer, l *partition.Layout, colors palette.ColorMap, state *interaction.State, top float64) {
	radius := Radius(r.width, r.height)
	fmt.Fprintf(buf, `  <g id="chart" class="chart" transform="translate(%.1f, %.1f)">`+"\n", r.width/2, top+r.height/2)
	fmt.Fprintf(buf, `    <circle r="%.1f" style="opacity: 0"/>`+"\n", radius)
	for _, a := range buildArcs(l, colors, state, radius, r.crumbs.W) {
		r.style.RenderArc(buf, a)
	}
	buf.WriteString("  </g>\n")
}

// buildArcs converts the visible nodes to arcs. crumbWidth bounds the label
// the interaction script puts on a breadcrumb.
func buildArcs(l *partition.Layout, colors palette.ColorMap, state *interaction.State, radius, crumbWidth float64) []styles.Arc {
	scale := l.AreaScale()
	if scale <= 0 {
		scale = 1
	}
	toPx := func(sq float64) float64 { return math.Sqrt(max(0, sq)/scale) * radius }

	visible := l.Visible()
	arcs := make([]styles.Arc, 0, len(visible))
	for _, n := range visible {
		a := styles.Arc{
			ID:         n.ID,
			Name:       n.Name,
			Label:      styles.TruncateLabel(n.Name, crumbWidth, crumbFontSize),
			Path:       strings.Join(l.Path(n.ID), " / "),
			Depth:      n.Depth,
			D:          styles.ArcPath(n.AngleStart, n.AngleEnd(), toPx(n.RadiusInnerSq), toPx(n.RadiusOuterSq)),
			Fill:       fillFor(colors, n.Name),
			Opacity:    1,
			Percentage: interaction.FormatPercentage(n.Value, l.Total()),
			Chain:      l.Ancestors(n.ID),
		}
		if state != nil {
			a.Opacity = state.Opacity(n.ID)
		}
		arcs = append(arcs, a)
	}
	return arcs
}

func renderTrail(buf *bytes.Buffer, r *svgRenderer, l *partition.Layout, colors palette.ColorMap, state *interaction.State) {
	var tr interaction.Trail
	if state != nil {
		tr = state.Trail()
	}
	visibility := "hidden"
	if tr.Visible {
		visibility = "visible"
	}

	fmt.Fprintf(buf, `  <g id="trail" class="trail" transform="translate(0, %.1f)" style="visibility: %s">`+"\n",
		(trailHeight-r.crumbs.H)/2, visibility)
	label := r.crumbs.LabelAt()
	for i, c := range tr.Crumbs {
		fill := fillFor(colors, c.Name)
		r.style.RenderCrumb(buf, styles.Crumb{
			Key:      interaction.Key{Name: c.Name, Depth: c.Depth}.String(),
			X:        r.crumbs.SlotX(i),
			Points:   r.crumbs.PointsAttr(i),
			Label:    styles.TruncateLabel(c.Name, r.crumbs.W, crumbFontSize),
			LabelX:   label.X,
			LabelY:   label.Y,
			Fill:     fill,
			TextFill: palette.TextColor(fill),
		})
	}
	r.style.RenderEndLabel(buf, styles.EndLabel{
		X:    r.crumbs.EndX(len(tr.Crumbs)),
		Y:    r.crumbs.H / 2,
		Text: tr.Percentage,
	})
	buf.WriteString("  </g>\n")
}

func renderLegend(buf *bytes.Buffer, r *svgRenderer, colors palette.ColorMap, top float64) {
	fmt.Fprintf(buf, `  <g id="legend" class="legend" transform="translate(%.1f, %.1f)">`+"\n", r.width+legendGap, top)
	for i, s := range colors.Entries() {
		r.style.RenderLegendItem(buf, styles.LegendItem{
			Name:     styles.TruncateLabel(s.Name, r.swatch.W, 12),
			Fill:     s.Color,
			TextFill: palette.TextColor(s.Color),
			Y:        r.swatch.ItemY(i),
			W:        r.swatch.W,
			H:        r.swatch.H,
			R:        r.swatch.R,
		})
	}
	buf.WriteString("  </g>\n")
}

func renderInteraction(buf *bytes.Buffer, r *svgRenderer) {
	b := r.crumbs
	js := fmt.Sprintf(interactionJS, b.W, b.H, b.S, b.T, interaction.FadedOpacity)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", js)
}

func fillFor(colors palette.ColorMap, name string) string {
	if c, ok := colors.Color(name); ok {
		return c
	}
	return defaultFill
}
