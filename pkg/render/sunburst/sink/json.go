package sink

import (
	"encoding/json"

	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	all   bool
	seed  uint64
	hue   string
	state *interaction.State
}

// WithJSONAllNodes exports every node, including the root and pruned nodes.
func WithJSONAllNodes() JSONOption { return func(r *jsonRenderer) { r.all = true } }

// WithJSONPalette records the palette seed and hue for reproducible re-rendering.
func WithJSONPalette(seed uint64, hue string) JSONOption {
	return func(r *jsonRenderer) { r.seed, r.hue = seed, hue }
}

// WithJSONState includes the trail of an interaction state.
func WithJSONState(s *interaction.State) JSONOption {
	return func(r *jsonRenderer) { r.state = s }
}

type jsonOutput struct {
	Total    float64            `json:"total"`
	MaxDepth int                `json:"max_depth"`
	Epsilon  float64            `json:"epsilon"`
	Seed     uint64             `json:"seed,omitempty"`
	Hue      string             `json:"hue,omitempty"`
	Nodes    []jsonNode         `json:"nodes"`
	Legend   []palette.Swatch   `json:"legend"`
	Trail    *interaction.Trail `json:"trail,omitempty"`
}

type jsonNode struct {
	partition.Node
	Path       []string `json:"path"`
	Color      string   `json:"color,omitempty"`
	Percentage string   `json:"percentage"`
}

// RenderJSON exports the layout geometry, colors and legend.
func RenderJSON(l *partition.Layout, colors palette.ColorMap, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	nodes := l.Visible()
	if r.all {
		nodes = l.Nodes()
	}

	out := jsonOutput{
		Total:    l.Total(),
		MaxDepth: l.MaxDepth(),
		Epsilon:  l.Epsilon(),
		Seed:     r.seed,
		Hue:      r.hue,
		Nodes:    make([]jsonNode, len(nodes)),
		Legend:   colors.Entries(),
	}
	for i, n := range nodes {
		color, _ := colors.Color(n.Name)
		if n.IsRoot() {
			color = ""
		}
		out.Nodes[i] = jsonNode{
			Node:       n,
			Path:       l.Path(n.ID),
			Color:      color,
			Percentage: interaction.FormatPercentage(n.Value, l.Total()),
		}
	}
	if r.state != nil && r.state.Layout() == l {
		tr := r.state.Trail()
		out.Trail = &tr
	}

	return json.MarshalIndent(out, "", "  ")
}
