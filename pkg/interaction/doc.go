// Package interaction tracks the hover state of a rendered sunburst.
//
// A [State] is bound to one [partition.Layout]. [State.Hover] derives, for the
// hovered node, the ancestor chain (outermost ancestor below the root first,
// the node itself last), the highlight set, the percentage of the grand total
// and the breadcrumb trail. [State.Leave] restores full opacity and hides the
// trail without forgetting its slots, so the next hover can reuse them.
//
// # Breadcrumbs
//
// Breadcrumb slots are keyed by (name, depth). Between two hovers a slot whose
// key survives keeps its visual identity and is only moved to its new index;
// slots not in the new chain are removed and new ones are appended in chain
// order. Each hover reports this as a [Diff], which is what a view applies.
//
//	hover B (chain A,B)    Entered: A B
//	hover Y (chain A,B,Y)  Kept: A B   Entered: Y
//	hover A (chain A)      Kept: A     Exited: B Y
//
// A State is not safe for concurrent use. Views drive it from a single event
// loop; servers create one per request.
package interaction
