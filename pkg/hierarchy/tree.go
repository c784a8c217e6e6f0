package hierarchy

import (
	"errors"
	"fmt"
	"slices"
)

// ErrValueMismatch is returned by [Tree.Validate] when an internal node's
// value differs from the sum of its children's values.
var ErrValueMismatch = errors.New("node value does not equal sum of children")

// NodeID addresses a node inside its [Tree]. IDs are dense indices into the
// tree's arena and are stable for the tree's lifetime.
type NodeID int

const (
	// Root is the ID of every tree's root node.
	Root NodeID = 0

	// NoParent is the parent of the root.
	NoParent NodeID = -1
)

// Node is a read-only view of one tree node.
type Node struct {
	ID       NodeID
	Name     string
	Value    int      // leaf: own count; internal: sum of descendant leaves
	Depth    int      // root = 0
	Parent   NodeID   // NoParent for the root
	Children []NodeID // first-seen order; empty for leaves
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// node is the arena slot. index maps a child name to its ID and is only
// consulted while building.
type node struct {
	name     string
	value    int
	depth    int
	parent   NodeID
	children []NodeID
	index    map[string]NodeID
}

// Tree is a counted category tree stored as an arena of nodes.
//
// Parent links are plain indices, so the tree has no ownership cycles.
// A Tree is immutable once [Build] returns and is safe for concurrent reads.
type Tree struct {
	nodes []node

	// Included is the number of records that contributed to the counts.
	Included int
	// Excluded is the number of records skipped for a missing key.
	Excluded int
}

func newTree(rootName string) *Tree {
	return &Tree{nodes: []node{{name: rootName, parent: NoParent, index: map[string]NodeID{}}}}
}

// child finds or creates the child of parent called name.
func (t *Tree) child(parent NodeID, name string) NodeID {
	if id, ok := t.nodes[parent].index[name]; ok {
		return id
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		name:   name,
		depth:  t.nodes[parent].depth + 1,
		parent: parent,
		index:  map[string]NodeID{},
	})
	p := &t.nodes[parent]
	p.children = append(p.children, id)
	p.index[name] = id
	return id
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Valid reports whether id addresses a node of t.
func (t *Tree) Valid(id NodeID) bool { return id >= 0 && int(id) < len(t.nodes) }

// Node returns a view of the node. It panics if id is not valid.
func (t *Tree) Node(id NodeID) Node {
	n := t.nodes[id]
	return Node{
		ID:       id,
		Name:     n.name,
		Value:    n.value,
		Depth:    n.depth,
		Parent:   n.parent,
		Children: slices.Clone(n.children),
	}
}

// Name returns the node's category name.
func (t *Tree) Name(id NodeID) string { return t.nodes[id].name }

// Value returns the node's aggregate count.
func (t *Tree) Value(id NodeID) int { return t.nodes[id].value }

// Depth returns the node's depth (root = 0).
func (t *Tree) Depth(id NodeID) int { return t.nodes[id].depth }

// Parent returns the node's parent, or NoParent for the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Children returns a copy of the node's child IDs in first-seen order.
func (t *Tree) Children(id NodeID) []NodeID { return slices.Clone(t.nodes[id].children) }

// NumChildren returns the node's child count.
func (t *Tree) NumChildren(id NodeID) int { return len(t.nodes[id].children) }

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf(id NodeID) bool { return len(t.nodes[id].children) == 0 }

// Height returns the maximum node depth.
func (t *Tree) Height() int {
	h := 0
	for _, n := range t.nodes {
		h = max(h, n.depth)
	}
	return h
}

// Ancestors returns id followed by each of its ancestors up to the root.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		out = append(out, cur)
	}
	return out
}

// Path returns the category names from the outermost level down to id,
// excluding the root. The root's path is empty.
func (t *Tree) Path(id NodeID) []string {
	anc := t.Ancestors(id)
	path := make([]string, 0, len(anc)-1)
	for i := len(anc) - 2; i >= 0; i-- {
		path = append(path, t.nodes[anc[i]].name)
	}
	return path
}

// Top returns the depth-1 ancestor of id (id itself at depth 1), which
// determines the node's colour family. The root's top is the root.
func (t *Tree) Top(id NodeID) NodeID {
	for t.nodes[id].depth > 1 {
		id = t.nodes[id].parent
	}
	return id
}

// Find resolves a path of names below the root.
func (t *Tree) Find(path ...string) (NodeID, bool) {
	cur := Root
	for _, name := range path {
		next, ok := t.nodes[cur].index[name]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits nodes in pre-order, children in first-seen order. Returning
// false from fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID) bool) {
	var visit func(NodeID)
	visit = func(id NodeID) {
		if !fn(id) {
			return
		}
		for _, c := range t.nodes[id].children {
			visit(c)
		}
	}
	visit(Root)
}

// Descendants returns every node in pre-order, root first.
func (t *Tree) Descendants() []NodeID {
	out := make([]NodeID, 0, len(t.nodes))
	t.Walk(func(id NodeID) bool {
		out = append(out, id)
		return true
	})
	return out
}

// Leaves returns the leaf IDs in pre-order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	t.Walk(func(id NodeID) bool {
		if t.IsLeaf(id) {
			out = append(out, id)
		}
		return true
	})
	return out
}

// Validate checks that every internal node's value equals the sum of its
// children's values, recursively.
func (t *Tree) Validate() error {
	for id, n := range t.nodes {
		if len(n.children) == 0 {
			continue
		}
		sum := 0
		for _, c := range n.children {
			sum += t.nodes[c].value
		}
		if sum != n.value {
			return fmt.Errorf("%w: %q has %d, children sum to %d",
				ErrValueMismatch, t.nodes[id].name, n.value, sum)
		}
	}
	return nil
}
