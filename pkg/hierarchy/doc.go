// Package hierarchy builds the counted category tree behind the migration
// sunburst.
//
// # Overview
//
// [Build] turns flat observations into a three-level tree keyed by migration
// reason, then species, then continent. Leaves count the observations that
// share all three keys; every internal node counts the observations below
// it. The root's value is therefore the number of records that carry all
// three keys.
//
// # Storage
//
// Nodes live in a flat arena and are addressed by [NodeID]. A node records
// its parent as an index, used only to reconstruct paths ([Tree.Path],
// [Tree.Ancestors]); there are no owning back-pointers. Each node keeps a
// name-keyed index of its children, so construction is a single pass with
// constant-time lookups and children keep first-seen order.
//
// # Immutability
//
// The tree is written only while [Build] runs. Navigation and animation
// state for a tree lives elsewhere (see package zoom) and is keyed by
// [NodeID].
package hierarchy
