package palette

import (
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
)

// Swatch is one legend entry.
type Swatch struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ColorMap maps node names to colors. Entries are kept in the order in which
// names were first seen during assignment, which is the legend order.
type ColorMap struct {
	colors map[string]string
	order  []string
}

// Color returns the color assigned to name.
func (m ColorMap) Color(name string) (string, bool) {
	c, ok := m.colors[name]
	return c, ok
}

// Len returns the number of distinct names.
func (m ColorMap) Len() int { return len(m.order) }

// Entries returns the assignments in legend order.
func (m ColorMap) Entries() []Swatch {
	out := make([]Swatch, len(m.order))
	for i, name := range m.order {
		out[i] = Swatch{Name: name, Color: m.colors[name]}
	}
	return out
}

// Assign colors every name below root.
//
// The synthetic root is not part of the input record and gets no color. The
// generator is called exactly once with the number of name occurrences.
// Later occurrences of a name overwrite earlier ones.
func Assign(root *hierarchy.Node, gen Generator, hint Hint) (ColorMap, error) {
	if gen == nil {
		return ColorMap{}, errors.New(errors.ErrCodeInvalidInput, "palette generator is nil")
	}
	if hint.Hue == "" {
		hint.Hue = DefaultHue
	}

	var names []string
	root.Walk(func(n *hierarchy.Node, depth int) bool {
		if depth > 0 {
			names = append(names, n.Name)
		}
		return true
	})

	m := ColorMap{colors: make(map[string]string, len(names))}
	if len(names) == 0 {
		return m, nil
	}

	colors := gen(len(names), hint)
	if len(colors) < len(names) {
		return ColorMap{}, errors.New(errors.ErrCodePaletteExhausted,
			"palette returned %d colors, %d requested", len(colors), len(names))
	}

	for i, name := range names {
		if _, seen := m.colors[name]; !seen {
			m.order = append(m.order, name)
		}
		m.colors[name] = colors[i]
	}
	return m, nil
}
