package hierarchy

import (
	"reflect"
	"testing"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestBuild(t *testing.T) {
	rec := Record{
		Group("x", Leaf("y", 10), Leaf("z", 30)),
		Leaf("w", 5),
	}
	root := Build(rec)

	if root.Name != RootName {
		t.Errorf("root name = %q, want %q", root.Name, RootName)
	}
	if root.Leaf {
		t.Error("root should not be a leaf")
	}
	if got := names(root.Children); !reflect.DeepEqual(got, []string{"x", "w"}) {
		t.Errorf("root children = %v, want [x w]", got)
	}

	x := root.Children[0]
	if got := names(x.Children); !reflect.DeepEqual(got, []string{"y", "z"}) {
		t.Errorf("x children = %v, want [y z]", got)
	}
	if x.Size != 0 {
		t.Errorf("group size = %v, want 0", x.Size)
	}
	if y := x.Children[0]; !y.Leaf || y.Size != 10 {
		t.Errorf("y = %+v, want leaf of size 10", y)
	}
	if w := root.Children[1]; !w.Leaf || w.Size != 5 || len(w.Children) != 0 {
		t.Errorf("w = %+v, want childless leaf of size 5", w)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	rec := Record{Leaf("zeta", 1), Leaf("alpha", 2), Leaf("mu", 3)}
	root := Build(rec)
	if got := names(root.Children); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mu"}) {
		t.Errorf("children = %v, want record order", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	for _, rec := range []Record{nil, {}} {
		root := Build(rec)
		if root.Name != RootName {
			t.Errorf("root name = %q", root.Name)
		}
		if root.Children == nil || len(root.Children) != 0 {
			t.Errorf("children = %v, want empty non-nil", root.Children)
		}
		if root.Count() != 1 {
			t.Errorf("Count() = %d, want 1", root.Count())
		}
	}
}

func TestBuildEmptyGroup(t *testing.T) {
	root := Build(Record{Group("empty")})
	g := root.Children[0]
	if g.Leaf {
		t.Error("empty group should not be a leaf")
	}
	if len(g.Children) != 0 {
		t.Errorf("children = %d, want 0", len(g.Children))
	}
}

func TestNodeWalk(t *testing.T) {
	root := Build(Record{
		Group("a", Group("b", Leaf("c", 1)), Leaf("d", 2)),
		Leaf("e", 3),
	})

	var visited []string
	var depths []int
	root.Walk(func(n *Node, d int) bool {
		visited = append(visited, n.Name)
		depths = append(depths, d)
		return true
	})
	if want := []string{"root", "a", "b", "c", "d", "e"}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
	if want := []int{0, 1, 2, 3, 2, 1}; !reflect.DeepEqual(depths, want) {
		t.Errorf("depths = %v, want %v", depths, want)
	}

	visited = nil
	root.Walk(func(n *Node, _ int) bool {
		visited = append(visited, n.Name)
		return n.Name != "a"
	})
	if want := []string{"root", "a", "e"}; !reflect.DeepEqual(visited, want) {
		t.Errorf("pruned walk = %v, want %v", visited, want)
	}
}

func TestNodeAggregates(t *testing.T) {
	root := Build(Record{
		Group("a", Group("b", Leaf("c", 1.5)), Leaf("d", 2)),
		Leaf("e", 3),
	})
	if got := root.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := root.LeafTotal(); got != 6.5 {
		t.Errorf("LeafTotal() = %v, want 6.5", got)
	}
	if got := root.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
}

func TestRecordTotalAndKeys(t *testing.T) {
	rec := Record{
		Group("a", Leaf("a", 1), Group("b", Leaf("a", 2))),
		Leaf("b", 4),
	}
	if got := rec.Total(); got != 7 {
		t.Errorf("Total() = %v, want 7", got)
	}
	if got, want := rec.Keys(), []string{"a", "a", "b", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestRecordSetReplacesInPlace(t *testing.T) {
	index := map[string]int{}
	var rec Record
	rec = rec.set(index, Leaf("a", 1))
	rec = rec.set(index, Leaf("b", 2))
	rec = rec.set(index, Leaf("a", 3))

	if len(rec) != 2 {
		t.Fatalf("len = %d, want 2", len(rec))
	}
	if rec[0].Key != "a" || rec[0].Value != 3 {
		t.Errorf("rec[0] = %+v, want a=3 at first position", rec[0])
	}
}
