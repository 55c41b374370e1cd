package styles

import "bytes"

// Style defines the visual appearance of a sunburst chart.
type Style interface {
	// RenderDefs writes SVG <defs> content and stylesheet rules.
	RenderDefs(buf *bytes.Buffer)
	// RenderArc writes one partition segment.
	RenderArc(buf *bytes.Buffer, a Arc)
	// RenderCrumb writes one breadcrumb polygon with its label.
	RenderCrumb(buf *bytes.Buffer, c Crumb)
	// RenderEndLabel writes the percentage shown after the last breadcrumb.
	RenderEndLabel(buf *bytes.Buffer, l EndLabel)
	// RenderLegendItem writes one legend swatch.
	RenderLegendItem(buf *bytes.Buffer, item LegendItem)
}

// Arc contains all data needed to paint one segment.
type Arc struct {
	ID         int     // Layout node ID
	Name       string  // Node name
	Label      string  // Name truncated to fit a breadcrumb
	Path       string  // Names from the outermost ancestor, joined by " / "
	Depth      int     // Ring, 1 for the innermost visible ring
	D          string  // SVG path data, see [ArcPath]
	Fill       string  // Segment color
	Opacity    float64 // 1, or faded while another segment is hovered
	Percentage string  // Share of the grand total
	Chain      []int   // Ancestor chain, used by the interaction script
}

// Crumb is a positioned breadcrumb.
type Crumb struct {
	Key      string  // Slot key, stable across hovers
	X        float64 // Slot offset
	Points   string  // Polygon points relative to the slot
	Label    string
	LabelX   float64
	LabelY   float64
	Fill     string
	TextFill string
}

// EndLabel is the percentage text after the trail.
type EndLabel struct {
	X, Y float64
	Text string
}

// LegendItem is one legend swatch.
type LegendItem struct {
	Name     string
	Fill     string
	TextFill string
	Y        float64
	W, H, R  float64
}

// Legend is the geometry of a legend swatch: width, height, spacing and
// corner radius.
type Legend struct {
	W, H, S, R float64
}

// DefaultLegend matches the legend drawn next to the chart.
var DefaultLegend = Legend{W: 75, H: 30, S: 3, R: 3}

// Height returns the height of a legend with n entries.
func (l Legend) Height(n int) float64 { return float64(n) * (l.H + l.S) }

// ItemY returns the vertical offset of the entry at index.
func (l Legend) ItemY(index int) float64 { return float64(index) * (l.H + l.S) }
