package interaction

import (
	"fmt"
	"maps"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/partition"
)

// FadedOpacity is the opacity of nodes outside the highlight set.
const FadedOpacity = 0.3

// Key identifies a breadcrumb slot across hovers.
type Key struct {
	Name  string
	Depth int
}

func (k Key) String() string { return fmt.Sprintf("%s@%d", k.Name, k.Depth) }

// Crumb is one entry of the trail.
type Crumb struct {
	Name   string `json:"name"`
	Depth  int    `json:"depth"`
	NodeID int    `json:"node_id"`
}

// Slot is a positioned breadcrumb.
type Slot struct {
	Key   Key
	Index int
	X     float64
	Crumb Crumb
}

// Diff describes how the breadcrumb slots changed with the last hover.
// Entered and Kept are in chain order; Exited in previous chain order.
type Diff struct {
	Entered []Slot
	Exited  []Slot
	Kept    []Slot
}

// Trail is the breadcrumb trail as a view paints it.
type Trail struct {
	Crumbs     []Crumb `json:"crumbs"`
	Percentage string  `json:"percentage"`
	Visible    bool    `json:"visible"`
	EndX       float64 `json:"end_x"`
}

// Result is the outcome of a hover.
type Result struct {
	Node        partition.Node
	Chain       []int
	Highlighted map[int]bool
	Percentage  string
	Trail       Trail
	Diff        Diff
}

// State is the hover state of one layout.
type State struct {
	layout    *partition.Layout
	geom      Breadcrumb
	hovered   int
	highlight map[int]bool
	slots     []Slot
	pct       string
	visible   bool
}

// New returns an idle state for l using [DefaultBreadcrumb] geometry.
func New(l *partition.Layout) *State {
	return NewWithGeometry(l, DefaultBreadcrumb)
}

// NewWithGeometry returns an idle state using custom breadcrumb geometry.
func NewWithGeometry(l *partition.Layout, geom Breadcrumb) *State {
	return &State{layout: l, geom: geom, hovered: -1}
}

// Layout returns the layout the state is bound to.
func (s *State) Layout() *partition.Layout { return s.layout }

// Geometry returns the breadcrumb geometry.
func (s *State) Geometry() Breadcrumb { return s.geom }

// HoverNode hovers a node copied out of a layout. Nodes from any other
// layout are rejected with [errors.ErrCodeStaleNode].
func (s *State) HoverNode(n partition.Node) (Result, error) {
	if !s.layout.Contains(n) {
		return Result{}, errors.New(errors.ErrCodeStaleNode,
			"node %q (id %d) does not belong to the current layout", n.Name, n.ID)
	}
	return s.Hover(n.ID)
}

// HoverPath hovers the node addressed by a path of names below the root.
func (s *State) HoverPath(path ...string) (Result, error) {
	if err := errors.ValidateNodePath(path); err != nil {
		return Result{}, err
	}
	n, err := s.layout.Find(path...)
	if err != nil {
		return Result{}, err
	}
	return s.Hover(n.ID)
}

// Hover makes id the hovered node.
func (s *State) Hover(id int) (Result, error) {
	n, ok := s.layout.Node(id)
	if !ok {
		return Result{}, errors.New(errors.ErrCodeNodeNotFound, "no node with id %d", id)
	}

	chain := s.layout.Ancestors(id)
	highlight := make(map[int]bool, len(chain)+1)
	highlight[id] = true
	for _, c := range chain {
		highlight[c] = true
	}

	pct := FormatPercentage(n.Value, s.layout.Total())
	if n.IsRoot() {
		pct = formatShare(100)
	}

	slots := make([]Slot, len(chain))
	for i, c := range chain {
		cn, _ := s.layout.Node(c)
		crumb := Crumb{Name: cn.Name, Depth: cn.Depth, NodeID: cn.ID}
		slots[i] = Slot{Key: Key{cn.Name, cn.Depth}, Index: i, X: s.geom.SlotX(i), Crumb: crumb}
	}
	diff := diffSlots(s.slots, slots)

	s.hovered = id
	s.highlight = highlight
	s.slots = slots
	s.pct = pct
	s.visible = true

	return Result{
		Node:        n,
		Chain:       chain,
		Highlighted: maps.Clone(highlight),
		Percentage:  pct,
		Trail:       s.Trail(),
		Diff:        diff,
	}, nil
}

func diffSlots(prev, next []Slot) Diff {
	old := make(map[Key]bool, len(prev))
	for _, p := range prev {
		old[p.Key] = true
	}
	cur := make(map[Key]bool, len(next))

	var d Diff
	for _, n := range next {
		cur[n.Key] = true
		if old[n.Key] {
			d.Kept = append(d.Kept, n)
		} else {
			d.Entered = append(d.Entered, n)
		}
	}
	for _, p := range prev {
		if !cur[p.Key] {
			d.Exited = append(d.Exited, p)
		}
	}
	return d
}

// Leave ends the hover: every node is painted opaque again and the trail is
// hidden. Slots are kept for the next hover.
func (s *State) Leave() {
	s.hovered = -1
	s.highlight = nil
	s.visible = false
}

// Hovered returns the hovered node ID, if any.
func (s *State) Hovered() (int, bool) {
	return s.hovered, s.hovered >= 0
}

// Highlighted reports whether id is in the current highlight set. With no
// hover in progress nothing is highlighted.
func (s *State) Highlighted(id int) bool {
	return s.highlight[id]
}

// Opacity returns the opacity a view should paint id with.
func (s *State) Opacity(id int) float64 {
	if s.highlight == nil || s.highlight[id] {
		return 1
	}
	return FadedOpacity
}

// Slots returns the current breadcrumb slots, including while hidden.
func (s *State) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Trail returns the current trail.
func (s *State) Trail() Trail {
	crumbs := make([]Crumb, len(s.slots))
	for i, sl := range s.slots {
		crumbs[i] = sl.Crumb
	}
	return Trail{
		Crumbs:     crumbs,
		Percentage: s.pct,
		Visible:    s.visible,
		EndX:       s.geom.EndX(len(crumbs)),
	}
}
