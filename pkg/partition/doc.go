// Package partition computes the radial partition layout of a hierarchy.
//
// # Geometry
//
// Every node receives an angular interval proportional to its aggregated value
// and a radial band determined by its depth:
//
//	AngleStart, AngleSpan          radians, children tile the parent exactly
//	RadiusInnerSq, RadiusOuterSq   squared radii, one equal band per depth
//
// Bands are linear in the squared radius, so a unit of value covers the same
// area at every depth. A view scales by passing the squared outer radius as
// the area scale ([WithAreaScale]) and takes square roots when painting.
//
// # Arena
//
// Nodes live in a flat slice addressed by ID, assigned in depth-first
// pre-order (the root is ID 0). Each node stores the index of its parent, so
// ancestor lookup is O(depth) without back pointers.
//
// # Pruning
//
// [Layout.Visible] drops nodes whose angular span does not exceed the
// visibility epsilon (0.005 radians by default). Pruning happens after the
// geometry is complete: a hidden node still counts towards its parent's
// value and span. The synthetic root is never part of the visible set.
//
// # Generations
//
// Each layout carries a random generation ID. Nodes copied out of a layout keep
// it, which lets interaction state reject nodes from an earlier render.
package partition
