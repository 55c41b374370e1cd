package hierarchy

// RootName is the name of the synthetic root created by [Build].
const RootName = "root"

// Node is a named node of the hierarchy. Leaves carry the raw count in Size;
// groups carry ordered children. Aggregated values are computed by the
// partition layout, not here.
type Node struct {
	Name     string
	Children []*Node
	Size     float64
	Leaf     bool
}

// Build converts rec into a tree below a synthetic root named [RootName].
// Sibling order follows record order. An empty record yields a root without
// children.
func Build(rec Record) *Node {
	root := &Node{Name: RootName, Children: []*Node{}}
	buildChildren(root, rec)
	return root
}

func buildChildren(parent *Node, rec Record) {
	for _, e := range rec {
		if e.Leaf {
			parent.Children = append(parent.Children, &Node{Name: e.Key, Size: e.Value, Leaf: true})
			continue
		}
		child := &Node{Name: e.Key, Children: []*Node{}}
		buildChildren(child, e.Children)
		parent.Children = append(parent.Children, child)
	}
}

// Walk visits n and its descendants in depth-first pre-order. Depth is 0 for
// n itself. Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// LeafTotal returns the sum of Size over all leaves below n.
func (n *Node) LeafTotal() float64 {
	var sum float64
	n.Walk(func(node *Node, _ int) bool {
		if node.Leaf {
			sum += node.Size
		}
		return true
	})
	return sum
}

// Depth returns the maximum depth below n (0 for a node without children).
func (n *Node) Depth() int {
	maxDepth := 0
	n.Walk(func(_ *Node, d int) bool {
		maxDepth = max(maxDepth, d)
		return true
	})
	return maxDepth
}
