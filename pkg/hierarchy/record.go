package hierarchy

// Entry is one key of a [Record]. A leaf entry carries a count in Value; a
// group entry carries a nested record in Children.
type Entry struct {
	Key      string
	Value    float64
	Children Record
	Leaf     bool
}

// Record is an ordered keyed structure whose leaves are counts.
// Order is the natural enumeration order of the source and is preserved.
type Record []Entry

// Leaf returns a leaf entry carrying count v.
func Leaf(key string, v float64) Entry {
	return Entry{Key: key, Value: v, Leaf: true}
}

// Group returns a group entry holding the given children in order.
func Group(key string, children ...Entry) Entry {
	if children == nil {
		children = Record{}
	}
	return Entry{Key: key, Children: children}
}

// Total returns the sum of all leaf counts reachable from r.
func (r Record) Total() float64 {
	var sum float64
	for _, e := range r {
		if e.Leaf {
			sum += e.Value
		} else {
			sum += e.Children.Total()
		}
	}
	return sum
}

// Keys returns every key of r in depth-first enumeration order, including
// repeated keys on different branches.
func (r Record) Keys() []string {
	var keys []string
	var walk func(Record)
	walk = func(rec Record) {
		for _, e := range rec {
			keys = append(keys, e.Key)
			if !e.Leaf {
				walk(e.Children)
			}
		}
	}
	walk(r)
	return keys
}

// set appends e, or replaces the value of an existing entry with the same key
// while keeping its position. This mirrors how a keyed object treats a
// repeated key in its source text.
func (r Record) set(index map[string]int, e Entry) Record {
	if i, ok := index[e.Key]; ok {
		r[i] = e
		return r
	}
	index[e.Key] = len(r)
	return append(r, e)
}
