package zoom

import (
	"time"

	"github.com/google/uuid"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/observability"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
)

// FocusState is the navigator's focus: the node whose subtree fills the
// circle.
type FocusState struct {
	Node hierarchy.NodeID
	Path []string // names from the root's child down to Node; empty at the root
}

// IsRoot reports whether the focus is the tree's root.
func (s FocusState) IsRoot() bool { return s.Node == hierarchy.Root }

// Run describes one interpolation from the arcs current at the time of a
// transition to the targets of the new focus.
type Run struct {
	ID       uuid.UUID
	From     hierarchy.NodeID
	To       hierarchy.NodeID
	Duration time.Duration
	Started  time.Time
}

// Progress returns the linear progress of the run at now, clamped to
// [0, 1]. A zero-length run is always complete.
func (r *Run) Progress(now time.Time) float64 {
	if r.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(r.Started)) / float64(r.Duration))
}

// Change is delivered to subscribers after every accepted transition.
type Change struct {
	From hierarchy.NodeID
	To   hierarchy.NodeID
	Run  *Run
}

// Navigator owns the zoom state of a sunburst: the focus, and for every
// node the current (displayed) arc and the target arc of the focus.
//
// Clicks map to [Navigator.DrillIn] and [Navigator.DrillOut]. Both return
// ok=false and leave the state untouched when there is nothing to zoom to:
// DrillIn on a leaf, on the current focus, or on a node whose arc has zero
// width, and DrillOut at the root. Renderers should treat a click on the
// centre disc as DrillOut, never as DrillIn on the focus.
//
// A Navigator is not safe for concurrent use. Drive it from one goroutine,
// typically the UI's event loop.
type Navigator struct {
	tree   *hierarchy.Tree
	layout *partition.Layout
	opts   Options

	focus   hierarchy.NodeID
	current []partition.Arc
	from    []partition.Arc
	target  []partition.Arc

	run      *Run
	progress float64
	slow     bool

	subs   map[int]func(Change)
	nextID int
}

// New returns a navigator focused on the root, with current and target
// arcs equal to the static layout.
func New(t *hierarchy.Tree, l *partition.Layout, opts Options) *Navigator {
	opts.SetDefaults()
	arcs := l.Arcs()
	return &Navigator{
		tree:     t,
		layout:   l,
		opts:     opts,
		focus:    hierarchy.Root,
		current:  arcs,
		from:     make([]partition.Arc, len(arcs)),
		target:   l.Arcs(),
		progress: 1,
		subs:     map[int]func(Change){},
	}
}

// Tree returns the navigated tree.
func (n *Navigator) Tree() *hierarchy.Tree { return n.tree }

// Options returns the effective options.
func (n *Navigator) Options() Options { return n.opts }

// Focus returns the current focus.
func (n *Navigator) Focus() FocusState {
	return FocusState{Node: n.focus, Path: n.tree.Path(n.focus)}
}

// Running returns the active run, if any.
func (n *Navigator) Running() (*Run, bool) { return n.run, n.run != nil }

// Progress returns the progress of the active run, or 1 when settled.
func (n *Navigator) Progress() float64 { return n.progress }

// SetSlow makes subsequent transitions last SlowFactor times longer.
func (n *Navigator) SetSlow(slow bool) { n.slow = slow }

// Slow reports whether slow motion is on.
func (n *Navigator) Slow() bool { return n.slow }

// Current returns the node's displayed arc.
func (n *Navigator) Current(id hierarchy.NodeID) partition.Arc { return n.current[id] }

// Target returns the node's arc under the current focus.
func (n *Navigator) Target(id hierarchy.NodeID) partition.Arc { return n.target[id] }

// DrillIn focuses id. It is rejected when id is a leaf, is already the
// focus, or has a zero-width allocation.
func (n *Navigator) DrillIn(id hierarchy.NodeID) (*Run, bool) {
	if !n.tree.Valid(id) || n.tree.IsLeaf(id) || id == n.focus {
		n.reject("drill-in", id)
		return nil, false
	}
	if n.layout.Arc(id).Width() <= 0 {
		n.reject("drill-in", id)
		return nil, false
	}
	return n.transition(id), true
}

// DrillOut focuses the parent of the current focus. It is rejected at the
// root.
func (n *Navigator) DrillOut() (*Run, bool) {
	if n.focus == hierarchy.Root {
		n.reject("drill-out", n.focus)
		return nil, false
	}
	return n.transition(n.tree.Parent(n.focus)), true
}

// Click handles a click on a node's arc.
func (n *Navigator) Click(id hierarchy.NodeID) (*Run, bool) { return n.DrillIn(id) }

// ClickParent handles a click on the centre disc or the background.
func (n *Navigator) ClickParent() (*Run, bool) { return n.DrillOut() }

// Subscribe registers fn to be called synchronously after every accepted
// transition. The returned function removes the subscription.
func (n *Navigator) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}

// Advance moves the active run to progress p, clamped to [0, 1], and
// returns the resulting frame. Every arc becomes the linear interpolation
// between its value when the run started and its target. At p = 1 the
// targets are committed exactly and the run ends. Without an active run
// Advance only returns the settled frame.
func (n *Navigator) Advance(p float64) Frame {
	if n.run == nil {
		return n.Snapshot()
	}
	p = clamp01(p)
	if p == 1 {
		copy(n.current, n.target)
		id := n.run.ID.String()
		n.run = nil
		n.progress = 1
		observability.Navigation().OnSettle(id)
		return n.Snapshot()
	}
	for i := range n.current {
		n.current[i] = partition.Lerp(n.from[i], n.target[i], p)
	}
	n.progress = p
	return n.Snapshot()
}

// AdvanceTo advances the active run to its clock-based progress at now,
// shaped by ease (nil for linear).
func (n *Navigator) AdvanceTo(now time.Time, ease Ease) Frame {
	if n.run == nil {
		return n.Snapshot()
	}
	p := n.run.Progress(now)
	if ease != nil && p < 1 {
		p = ease(p)
	}
	return n.Advance(p)
}

// Settle completes the active run immediately.
func (n *Navigator) Settle() Frame { return n.Advance(1) }

// transition retargets every node onto the new focus and starts a run from
// the arcs currently displayed, so an interrupted run continues from where
// it was instead of jumping.
func (n *Navigator) transition(to hierarchy.NodeID) *Run {
	prev := n.focus
	copy(n.from, n.current)

	f := n.layout.Arc(to)
	depth := float64(n.tree.Depth(to))
	for i := range n.target {
		n.target[i] = retarget(n.layout.Arc(hierarchy.NodeID(i)), f, depth)
	}
	n.focus = to

	d := n.opts.Duration
	if n.slow {
		d *= time.Duration(n.opts.SlowFactor)
	}
	n.run = &Run{
		ID:       uuid.New(),
		From:     prev,
		To:       to,
		Duration: d,
		Started:  n.opts.Now(),
	}
	n.progress = 0

	observability.Navigation().OnTransition(n.run.ID.String(), n.tree.Path(prev), n.tree.Path(to), d)
	ch := Change{From: prev, To: to, Run: n.run}
	for i := 0; i < n.nextID; i++ {
		if fn, ok := n.subs[i]; ok {
			fn(ch)
		}
	}
	return n.run
}

func (n *Navigator) reject(action string, id hierarchy.NodeID) {
	var path []string
	if n.tree.Valid(id) {
		path = n.tree.Path(id)
	}
	observability.Navigation().OnRejected(action, path)
}

// retarget maps a static arc into the frame of focus f at depth: the focus
// interval stretches to the full circle and the focus ring becomes ring 0.
// Arcs outside the focus collapse onto 0 or 2π; ancestors collapse radially.
func retarget(a, f partition.Arc, depth float64) partition.Arc {
	span := f.Width()
	return partition.Arc{
		X0: clamp01((a.X0-f.X0)/span) * partition.FullCircle,
		X1: clamp01((a.X1-f.X0)/span) * partition.FullCircle,
		Y0: max(0, a.Y0-depth),
		Y1: max(0, a.Y1-depth),
	}
}
