package partition

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
)

// DefaultEpsilon is the smallest angular span, in radians, still considered
// visible.
const DefaultEpsilon = 0.005

// Node is a tree node augmented with its aggregated value and geometry.
type Node struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Depth    int     `json:"depth"`
	Parent   int     `json:"parent"`
	Children []int   `json:"children,omitempty"`
	Leaf     bool    `json:"leaf,omitempty"`
	Size     float64 `json:"size,omitempty"`
	Value    float64 `json:"value"`

	AngleStart    float64 `json:"angle_start"`
	AngleSpan     float64 `json:"angle_span"`
	RadiusInnerSq float64 `json:"radius_inner_sq"`
	RadiusOuterSq float64 `json:"radius_outer_sq"`

	Generation uuid.UUID `json:"-"`
}

// AngleEnd returns AngleStart + AngleSpan.
func (n Node) AngleEnd() float64 { return n.AngleStart + n.AngleSpan }

// IsRoot reports whether n is the synthetic root.
func (n Node) IsRoot() bool { return n.Parent < 0 }

// Option configures a layout.
type Option func(*config)

type config struct {
	totalAngle float64
	areaScale  float64
	epsilon    float64
}

// WithTotalAngle sets the angle spanned by the root (default 2π).
func WithTotalAngle(a float64) Option {
	return func(c *config) { c.totalAngle = a }
}

// WithAreaScale sets the squared radius of the outermost band (default 1).
func WithAreaScale(s float64) Option {
	return func(c *config) { c.areaScale = s }
}

// WithEpsilon sets the visibility threshold used by [Layout.Visible].
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}

// Layout is the geometrized copy of a hierarchy.
// A Layout is immutable once built and safe for concurrent reads.
type Layout struct {
	nodes      []Node
	maxDepth   int
	generation uuid.UUID
	cfg        config
}

// New lays out the tree rooted at root.
//
// Values are aggregated bottom-up, then each node's span is divided among its
// children in child order, proportional to their values. A node whose value is
// zero splits its span equally. Negative or NaN leaf sizes count as zero.
func New(root *hierarchy.Node, opts ...Option) *Layout {
	cfg := config{totalAngle: 2 * math.Pi, areaScale: 1, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Layout{generation: uuid.New(), cfg: cfg}
	l.flatten(root, -1, 0)
	l.aggregate()
	l.partition()
	l.bands()
	return l
}

func (l *Layout) flatten(n *hierarchy.Node, parent, depth int) int {
	id := len(l.nodes)
	l.nodes = append(l.nodes, Node{
		ID:         id,
		Name:       n.Name,
		Depth:      depth,
		Parent:     parent,
		Leaf:       n.Leaf,
		Size:       n.Size,
		Generation: l.generation,
	})
	l.maxDepth = max(l.maxDepth, depth)

	if len(n.Children) > 0 {
		children := make([]int, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, l.flatten(c, id, depth+1))
		}
		l.nodes[id].Children = children
	}
	return id
}

// aggregate fills in values. Children always have larger IDs than their
// parent, so a reverse sweep sees every child before its parent.
func (l *Layout) aggregate() {
	for i := len(l.nodes) - 1; i >= 0; i-- {
		n := &l.nodes[i]
		if n.Leaf {
			if n.Size > 0 && !math.IsInf(n.Size, 1) {
				n.Value = n.Size
			}
			continue
		}
		var sum float64
		for _, c := range n.Children {
			sum += l.nodes[c].Value
		}
		// saturate instead of overflowing; partition rescales these
		n.Value = min(sum, math.MaxFloat64)
	}
}

// childNorm returns a divisor that keeps the running sums over n's children
// finite, and the normalized total they add up to.
func (l *Layout) childNorm(n Node) (norm, total float64) {
	if n.Value < math.MaxFloat64 {
		return 1, n.Value
	}
	for _, c := range n.Children {
		norm = max(norm, l.nodes[c].Value)
	}
	for _, c := range n.Children {
		total += l.nodes[c].Value / norm
	}
	return norm, total
}

// partition assigns angular intervals top-down. Child boundaries are
// computed from running sums, and the last child always ends at the parent's
// end, so spans never drift across many siblings.
func (l *Layout) partition() {
	l.nodes[0].AngleStart = 0
	l.nodes[0].AngleSpan = l.cfg.totalAngle

	for i := range l.nodes {
		n := l.nodes[i]
		count := len(n.Children)
		if count == 0 {
			continue
		}
		end := n.AngleEnd()
		start := n.AngleStart
		norm, total := l.childNorm(n)
		var cum float64
		for k, c := range n.Children {
			child := &l.nodes[c]
			cum += child.Value / norm
			next := end
			if k < count-1 {
				if total > 0 {
					next = n.AngleStart + n.AngleSpan*(cum/total)
				} else {
					next = n.AngleStart + n.AngleSpan*float64(k+1)/float64(count)
				}
				next = min(max(next, start), end)
			}
			child.AngleStart = start
			child.AngleSpan = next - start
			start = next
		}
	}
}

func (l *Layout) bands() {
	root := &l.nodes[0]
	if len(root.Children) == 0 {
		// nothing to draw: zero-area root
		return
	}
	bands := float64(l.maxDepth + 1)
	for i := range l.nodes {
		n := &l.nodes[i]
		n.RadiusInnerSq = float64(n.Depth) / bands * l.cfg.areaScale
		n.RadiusOuterSq = float64(n.Depth+1) / bands * l.cfg.areaScale
	}
}

// Generation identifies this layout. Every node copied out of it carries the
// same value.
func (l *Layout) Generation() uuid.UUID { return l.generation }

// Root returns the synthetic root.
func (l *Layout) Root() Node { return l.nodes[0] }

// Len returns the number of nodes, root included.
func (l *Layout) Len() int { return len(l.nodes) }

// Node returns the node with the given ID.
func (l *Layout) Node(id int) (Node, bool) {
	if id < 0 || id >= len(l.nodes) {
		return Node{}, false
	}
	return l.nodes[id], true
}

// Nodes returns all nodes in pre-order.
func (l *Layout) Nodes() []Node {
	out := make([]Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Children returns the children of id in order.
func (l *Layout) Children(id int) []Node {
	n, ok := l.Node(id)
	if !ok {
		return nil
	}
	out := make([]Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = l.nodes[c]
	}
	return out
}

// Visible returns the non-root nodes whose span exceeds the epsilon, in
// pre-order.
func (l *Layout) Visible() []Node {
	var out []Node
	for _, n := range l.nodes[1:] {
		if n.AngleSpan > l.cfg.epsilon {
			out = append(out, n)
		}
	}
	return out
}

// IsVisible reports whether id is part of [Layout.Visible].
func (l *Layout) IsVisible(id int) bool {
	n, ok := l.Node(id)
	return ok && !n.IsRoot() && n.AngleSpan > l.cfg.epsilon
}

// Ancestors returns the chain from the outermost ancestor below the root down
// to id itself. The root's chain is empty; an unknown id yields nil.
func (l *Layout) Ancestors(id int) []int {
	if id < 0 || id >= len(l.nodes) {
		return nil
	}
	depth := l.nodes[id].Depth
	chain := make([]int, depth)
	for cur := id; depth > 0; depth-- {
		chain[depth-1] = cur
		cur = l.nodes[cur].Parent
	}
	return chain
}

// Path returns the names along [Layout.Ancestors].
func (l *Layout) Path(id int) []string {
	chain := l.Ancestors(id)
	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = l.nodes[c].Name
	}
	return names
}

// Total returns the root's value, the sum of all leaf sizes.
func (l *Layout) Total() float64 { return l.nodes[0].Value }

// MaxDepth returns the depth of the deepest node (0 for an empty tree).
func (l *Layout) MaxDepth() int { return l.maxDepth }

// Epsilon returns the visibility threshold.
func (l *Layout) Epsilon() float64 { return l.cfg.epsilon }

// AreaScale returns the squared radius of the outermost band.
func (l *Layout) AreaScale() float64 { return l.cfg.areaScale }

// Contains reports whether n was produced by this layout.
func (l *Layout) Contains(n Node) bool {
	return n.Generation == l.generation && n.ID >= 0 && n.ID < len(l.nodes)
}

// Find resolves a path of names below the root. The empty path is the root.
// Among siblings with the same name, the first one wins.
func (l *Layout) Find(path ...string) (Node, error) {
	cur := 0
	for i, name := range path {
		next := -1
		for _, c := range l.nodes[cur].Children {
			if l.nodes[c].Name == name {
				next = c
				break
			}
		}
		if next < 0 {
			return Node{}, errors.New(errors.ErrCodeNodeNotFound, "no node %q below /%s", name, strings.Join(path[:i], "/"))
		}
		cur = next
	}
	return l.nodes[cur], nil
}

// At returns the deepest visible node covering the polar point (angle,
// radiusSq), where angle is measured like AngleStart.
func (l *Layout) At(angle, radiusSq float64) (Node, bool) {
	if total := l.cfg.totalAngle; total > 0 {
		angle = math.Mod(angle, total)
		if angle < 0 {
			angle += total
		}
	}
	best, found := Node{}, false
	for _, n := range l.Visible() {
		if angle < n.AngleStart || angle >= n.AngleEnd() {
			continue
		}
		if radiusSq < n.RadiusInnerSq || radiusSq >= n.RadiusOuterSq {
			continue
		}
		if !found || n.Depth > best.Depth {
			best, found = n, true
		}
	}
	return best, found
}
