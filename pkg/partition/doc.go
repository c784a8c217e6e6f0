// Package partition computes the sunburst layout of a counted tree.
//
// Every node receives an [Arc]: an angular interval proportional to its
// value among its siblings, and a radial interval equal to its depth ring.
// The root spans the full circle, so at every depth the arcs of that depth
// tile [0, 2π] exactly.
//
//	tree := hierarchy.Build(records)
//	l := partition.Compute(tree, partition.Options{})
//	arc := l.Arc(id)       // exact allocation
//	shown := l.Padded(id)  // with the display gap
//
// # Padding
//
// A small gap (default [DefaultPadAngle]) separates adjacent arcs on
// screen. The gap is taken symmetrically from each arc's own interval and
// never exceeds half its width, so padding does not move arcs, change their
// centres, or make thin arcs overlap. The stored allocation stays exact;
// padding is applied on read through [Layout.Padded] or [Arc.Pad].
//
// # Zero values
//
// Siblings whose values sum to zero split their parent's interval equally.
// A zero-valued sibling among positive ones gets a zero-width arc. No
// computation divides by a zero total, so arcs are never NaN.
package partition
