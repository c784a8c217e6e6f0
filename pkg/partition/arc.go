package partition

import "math"

// FullCircle is the angular extent of the root, in radians.
const FullCircle = 2 * math.Pi

// Arc is a node's position in a sunburst: an angular interval [X0, X1] in
// radians and a radial interval [Y0, Y1] in depth units (ring index), not
// pixels. Renderers scale Y by radius / maximum depth.
type Arc struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

// Width returns the angular span.
func (a Arc) Width() float64 { return a.X1 - a.X0 }

// Thickness returns the radial span.
func (a Arc) Thickness() float64 { return a.Y1 - a.Y0 }

// Area returns the angular × radial span product used for label placement.
func (a Arc) Area() float64 { return a.Width() * a.Thickness() }

// MidAngle returns the angle halfway through the arc.
func (a Arc) MidAngle() float64 { return (a.X0 + a.X1) / 2 }

// MidRadius returns the radius halfway through the ring.
func (a Arc) MidRadius() float64 { return (a.Y0 + a.Y1) / 2 }

// Pad shrinks the arc symmetrically by pad radians in total, half on each
// side. pad is clamped to half the arc's width so the result never inverts.
func (a Arc) Pad(pad float64) Arc {
	p := math.Min(a.Width()/2, pad)
	if p <= 0 {
		return a
	}
	a.X0 += p / 2
	a.X1 -= p / 2
	return a
}

// Lerp interpolates every field of a towards b. t = 0 yields a and t = 1
// yields b exactly.
func Lerp(a, b Arc, t float64) Arc {
	if t >= 1 {
		return b
	}
	if t <= 0 {
		return a
	}
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return Arc{
		X0: mix(a.X0, b.X0),
		X1: mix(a.X1, b.X1),
		Y0: mix(a.Y0, b.Y0),
		Y1: mix(a.Y1, b.Y1),
	}
}
