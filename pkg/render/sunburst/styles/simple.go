package styles

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Simple paints flat segments separated by thin white strokes.
type Simple struct{}

const simpleCSS = `
    .arc { stroke: #fff; stroke-width: 1; transition: opacity 0.2s ease; }
    .trail text, .legend text { font: 600 12px sans-serif; }
    .endlabel { font: 600 14px sans-serif; fill: #000; }`

func (Simple) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", simpleCSS)
}

func (Simple) RenderArc(buf *bytes.Buffer, a Arc) {
	fmt.Fprintf(buf, `    <path id="arc-%d" class="arc" d="%s" fill-rule="evenodd" fill="%s" style="opacity: %s" data-name="%s" data-label="%s" data-depth="%d" data-pct="%s" data-chain="%s">`,
		a.ID, a.D, EscapeXML(a.Fill), formatOpacity(a.Opacity), EscapeXML(a.Name), EscapeXML(a.Label), a.Depth, EscapeXML(a.Percentage), joinInts(a.Chain))
	fmt.Fprintf(buf, "<title>%s (%s)</title></path>\n", EscapeXML(a.Path), EscapeXML(a.Percentage))
}

func (Simple) RenderCrumb(buf *bytes.Buffer, c Crumb) {
	fmt.Fprintf(buf, `    <g class="crumb" data-key="%s" transform="translate(%s, 0)">`, EscapeXML(c.Key), num(c.X))
	fmt.Fprintf(buf, `<polygon points="%s" fill="%s"/>`, c.Points, EscapeXML(c.Fill))
	fmt.Fprintf(buf, `<text x="%s" y="%s" dy="0.35em" text-anchor="middle" fill="%s">%s</text></g>`+"\n",
		num(c.LabelX), num(c.LabelY), EscapeXML(c.TextFill), EscapeXML(c.Label))
}

func (Simple) RenderEndLabel(buf *bytes.Buffer, l EndLabel) {
	fmt.Fprintf(buf, `    <text class="endlabel" x="%s" y="%s" dy="0.35em" text-anchor="middle">%s</text>`+"\n",
		num(l.X), num(l.Y), EscapeXML(l.Text))
}

func (Simple) RenderLegendItem(buf *bytes.Buffer, item LegendItem) {
	fmt.Fprintf(buf, `    <g class="legend-item" transform="translate(0, %s)">`, num(item.Y))
	fmt.Fprintf(buf, `<rect rx="%s" ry="%s" width="%s" height="%s" fill="%s"/>`,
		num(item.R), num(item.R), num(item.W), num(item.H), EscapeXML(item.Fill))
	fmt.Fprintf(buf, `<text x="%s" y="%s" dy="0.35em" text-anchor="middle" fill="%s">%s</text></g>`+"\n",
		num(item.W/2), num(item.H/2), EscapeXML(item.TextFill), EscapeXML(item.Name))
}

func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'f', -1, 64)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
