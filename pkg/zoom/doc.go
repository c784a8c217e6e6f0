// Package zoom implements sunburst navigation: a focus state machine with
// animated transitions between layouts.
//
// A [Navigator] starts focused on the root with every arc at its static
// [partition.Layout] position. Drilling in on a node with children, or out
// to the focus's parent, computes a target arc for every node in which the
// focus spans the full circle and the focus ring becomes ring 0. Nodes
// outside the focus collapse to zero width at 0 or 2π and ancestors
// collapse to zero thickness, so neither is drawn.
//
// Transitions do not move arcs. They start a [Run], and the caller moves
// it along with [Navigator.Advance] on its own clock:
//
//	run, ok := nav.Click(id)
//	for tick := range ticker.C {
//	    frame := nav.AdvanceTo(tick, zoom.CubicInOut)
//	    draw(frame)
//	    if frame.Settled {
//	        break
//	    }
//	}
//
// A transition issued while a run is active starts from the arcs as they
// are displayed at that moment.
//
// Visibility follows the displayed arcs: an arc is drawn when its radial
// interval lies within [1, 3] relative to the focus, which shows the two
// rings below the focus, and its width is positive. It gets a label when
// its area also exceeds a small threshold.
package zoom
