package hierarchy

import (
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// DefaultRootName names the root of a migration hierarchy.
const DefaultRootName = "MigrationReasons"

// Build groups records into a reason → species → continent tree rooted at
// [DefaultRootName].
//
// Records missing any of the three keys are skipped and counted in
// [Tree.Excluded]. Names are matched exactly. Each included record adds one
// to every node on its path, so internal values equal the sum of their
// children by construction.
func Build(records []record.Record) *Tree {
	b := NewBuilder(DefaultRootName)
	for _, r := range records {
		b.Add(r)
	}
	return b.Tree()
}

// Builder accumulates counts into a tree in a single pass.
// A Builder must not be used after [Builder.Tree] is called.
type Builder struct {
	t *Tree
}

// NewBuilder starts an empty tree with the given root name.
func NewBuilder(rootName string) *Builder {
	return &Builder{t: newTree(rootName)}
}

// Add counts one record along its reason, species and continent. It
// returns false, counting the record as excluded, when a key is empty.
func (b *Builder) Add(r record.Record) bool {
	if !r.HasGroupingKeys() {
		b.t.Excluded++
		return false
	}
	b.AddCount(1, r.Reason, r.Species, r.Continent)
	return true
}

// AddCount adds n observations along path, creating nodes as needed. A
// zero n still creates the path, which yields zero-valued nodes for
// pre-aggregated data. Negative n is ignored. Paths of one tree should
// share a length, otherwise an inner node's own count breaks the sum
// invariant checked by [Tree.Validate].
func (b *Builder) AddCount(n int, path ...string) {
	if n < 0 {
		return
	}
	t := b.t
	cur := Root
	t.nodes[cur].value += n
	for _, name := range path {
		cur = t.child(cur, name)
		t.nodes[cur].value += n
	}
	t.Included += n
}

// Tree returns the built tree.
func (b *Builder) Tree() *Tree {
	t := b.t
	b.t = nil
	return t
}
