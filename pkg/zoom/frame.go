package zoom

import (
	"fmt"
	"math"
	"strings"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
)

// Frame is what a renderer draws for one animation tick.
type Frame struct {
	Focus    hierarchy.NodeID
	Progress float64 // 1 when no run is active
	Settled  bool
	PadAngle float64

	// MaxDepth is the outermost visible ring; renderers scale radial units
	// by radius / MaxDepth.
	MaxDepth float64

	// Arcs holds one entry per node, indexed by node ID.
	Arcs []FrameArc
}

// FrameArc is one node's displayed state.
type FrameArc struct {
	ID           hierarchy.NodeID
	Arc          partition.Arc
	ArcVisible   bool
	LabelVisible bool
}

// Padded returns the arc with the frame's pad gap applied.
func (f Frame) Padded(id hierarchy.NodeID) partition.Arc {
	return f.Arcs[id].Arc.Pad(f.PadAngle)
}

// Visible returns the visible arcs in node order.
func (f Frame) Visible() []FrameArc {
	var out []FrameArc
	for _, a := range f.Arcs {
		if a.ArcVisible {
			out = append(out, a)
		}
	}
	return out
}

// Snapshot returns the frame for the arcs as currently displayed.
func (n *Navigator) Snapshot() Frame {
	fr := Frame{
		Focus:    n.focus,
		Progress: n.progress,
		Settled:  n.run == nil,
		PadAngle: n.layout.PadAngle(),
		MaxDepth: n.opts.MaxVisibleDepth,
		Arcs:     make([]FrameArc, len(n.current)),
	}
	for i, a := range n.current {
		fr.Arcs[i] = FrameArc{
			ID:           hierarchy.NodeID(i),
			Arc:          a,
			ArcVisible:   n.ArcVisible(a),
			LabelVisible: n.LabelVisible(a),
		}
	}
	return fr
}

// ArcVisible reports whether a is drawn: it lies in the visible rings and
// has positive angular width.
func (n *Navigator) ArcVisible(a partition.Arc) bool {
	return ArcVisible(a, n.opts.minVisibleDepth(), n.opts.MaxVisibleDepth)
}

// LabelVisible reports whether a is drawn with a label.
func (n *Navigator) LabelVisible(a partition.Arc) bool {
	return n.ArcVisible(a) && a.Area() > n.opts.LabelMinArea
}

// ArcVisible reports whether a lies within rings [minDepth, maxDepth] and
// has positive angular width.
func ArcVisible(a partition.Arc, minDepth, maxDepth float64) bool {
	return a.Y0 >= minDepth && a.Y1 <= maxDepth && a.X1 > a.X0
}

// Label positions a node's label: rotate by Rotate degrees, move out to
// Radius, then turn the text upright when Flip is set.
type Label struct {
	Rotate float64 `json:"rotate"` // degrees, as for SVG rotate()
	Radius float64 `json:"radius"` // radial units
	Flip   bool    `json:"flip"`
}

// LabelTransform places a label at the middle of a, reading outwards on
// the right half of the circle and inwards on the left.
func LabelTransform(a partition.Arc) Label {
	deg := a.MidAngle() * 180 / math.Pi
	return Label{
		Rotate: deg - 90,
		Radius: a.MidRadius(),
		Flip:   deg >= 180,
	}
}

// SVG renders the label as an SVG transform, scaling radial units by
// scale pixels.
func (l Label) SVG(scale float64) string {
	flip := 0
	if l.Flip {
		flip = 180
	}
	return fmt.Sprintf("rotate(%.2f) translate(%.2f,0) rotate(%d)", l.Rotate, l.Radius*scale, flip)
}

// Tooltip describes a node on hover: its names from the root joined with
// arrows, then its count.
func Tooltip(t *hierarchy.Tree, id hierarchy.NodeID) string {
	anc := t.Ancestors(id)
	names := make([]string, len(anc))
	for i, a := range anc {
		names[len(anc)-1-i] = t.Name(a)
	}
	return fmt.Sprintf("%s\n%d migrations", strings.Join(names, " → "), t.Value(id))
}
