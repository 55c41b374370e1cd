// Package hierarchy turns a nested keyed count record into a tree of named nodes.
//
// # Overview
//
// The input is a result set grouped by successive categorical dimensions: every
// key maps either to a count (a leaf) or to another keyed record (a group).
//
//	{"result": {"x": {"y": 10, "z": 30}}}
//
// [Build] walks the record in its natural enumeration order and produces a tree
// below a synthetic root named [RootName]:
//
//	root
//	└── x
//	    ├── y (size 10)
//	    └── z (size 30)
//
// Key order is significant: it decides sibling order and therefore the angular
// order of arcs in the final sunburst. Go maps do not preserve insertion order,
// so a [Record] is an ordered slice of entries, and the decoders ([DecodeJSON],
// [DecodeYAML]) walk the source document in document order.
//
// # Values
//
// Build never computes aggregated values; the partition layout does that. Leaf
// sizes are taken as given. Negative sizes are a caller contract violation and
// only distort proportions downstream.
//
// # Names
//
// Node names are only unique among siblings. The same name may appear on
// several branches and at several depths.
package hierarchy
