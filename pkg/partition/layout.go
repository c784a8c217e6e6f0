package partition

import (
	"cmp"
	"slices"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
)

// DefaultPadAngle is the gap, in radians, reserved between adjacent arcs.
const DefaultPadAngle = 0.005

// Options configures [Compute].
type Options struct {
	// PadAngle is the total gap reserved per arc. Zero selects
	// DefaultPadAngle; a negative value disables padding.
	PadAngle float64

	// SortByValue orders siblings by descending value (stable, so ties keep
	// first-seen order). When false, siblings keep the tree's order.
	SortByValue bool
}

// SetDefaults fills zero-valued options.
func (o *Options) SetDefaults() {
	if o.PadAngle == 0 {
		o.PadAngle = DefaultPadAngle
	}
}

func (o Options) pad() float64 {
	if o.PadAngle < 0 {
		return 0
	}
	return o.PadAngle
}

// Layout is the static sunburst partition of a tree: one [Arc] per node,
// indexed by [hierarchy.NodeID].
//
// The stored arcs are the exact proportional allocation. Sibling arcs tile
// their parent's interval with no gaps. [Layout.Padded] applies the pad
// gap for display.
type Layout struct {
	arcs     []Arc
	order    [][]hierarchy.NodeID
	padAngle float64
	depth    int
}

// Compute lays out t.
//
// The root spans [0, 2π]. A node's children divide its interval in child
// order, each taking a share proportional to its value. When the children's
// values sum to zero the interval is split equally instead. Radially a node
// at depth d occupies [d, d+1].
func Compute(t *hierarchy.Tree, opts Options) *Layout {
	opts.SetDefaults()

	l := &Layout{
		arcs:     make([]Arc, t.Len()),
		order:    make([][]hierarchy.NodeID, t.Len()),
		padAngle: opts.pad(),
		depth:    t.Height(),
	}
	l.arcs[hierarchy.Root] = Arc{X0: 0, X1: FullCircle, Y0: 0, Y1: 1}

	t.Walk(func(id hierarchy.NodeID) bool {
		kids := t.Children(id)
		if opts.SortByValue {
			slices.SortStableFunc(kids, func(a, b hierarchy.NodeID) int {
				return cmp.Compare(t.Value(b), t.Value(a))
			})
		}
		l.order[id] = kids
		l.divide(t, id, kids)
		return true
	})
	return l
}

// divide allocates the parent's interval among kids.
func (l *Layout) divide(t *hierarchy.Tree, parent hierarchy.NodeID, kids []hierarchy.NodeID) {
	if len(kids) == 0 {
		return
	}
	p := l.arcs[parent]
	span := p.Width()

	total := 0
	for _, k := range kids {
		total += t.Value(k)
	}

	cursor := p.X0
	for i, k := range kids {
		var share float64
		if total == 0 {
			share = span / float64(len(kids))
		} else {
			share = span * float64(t.Value(k)) / float64(total)
		}
		x1 := cursor + share
		if i == len(kids)-1 {
			x1 = p.X1
		}
		d := float64(t.Depth(k))
		l.arcs[k] = Arc{X0: cursor, X1: x1, Y0: d, Y1: d + 1}
		cursor = x1
	}
}

// Len returns the number of arcs.
func (l *Layout) Len() int { return len(l.arcs) }

// Arc returns the node's unpadded arc.
func (l *Layout) Arc(id hierarchy.NodeID) Arc { return l.arcs[id] }

// Padded returns the node's arc with the pad gap applied.
func (l *Layout) Padded(id hierarchy.NodeID) Arc { return l.arcs[id].Pad(l.padAngle) }

// Arcs returns a copy of every unpadded arc, indexed by node ID.
func (l *Layout) Arcs() []Arc { return slices.Clone(l.arcs) }

// Children returns the node's children in layout order.
func (l *Layout) Children(id hierarchy.NodeID) []hierarchy.NodeID {
	return slices.Clone(l.order[id])
}

// PadAngle returns the effective pad gap in radians.
func (l *Layout) PadAngle() float64 { return l.padAngle }

// Depth returns the tree's maximum depth, the radial extent renderers map
// to their outer radius.
func (l *Layout) Depth() int { return l.depth }
