package sink

import (
	"fmt"
	"math"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
)

// Palette assigns each top-level category (a migration reason) a colour.
// Every node is drawn in the colour of its depth-1 ancestor.
type Palette map[hierarchy.NodeID]string

// RainbowPalette spaces n+1 colours evenly along a cubehelix rainbow and
// hands them to the root's children in tree order, where n is the number
// of children. The last colour is unused, so the first and last categories
// never share the wrap-around hue.
func RainbowPalette(t *hierarchy.Tree) Palette {
	kids := t.Children(hierarchy.Root)
	p := make(Palette, len(kids))
	for i, k := range kids {
		p[k] = Rainbow(float64(i) / float64(len(kids)))
	}
	return p
}

// Color returns the fill of node id.
func (p Palette) Color(t *hierarchy.Tree, id hierarchy.NodeID) string {
	if c, ok := p[t.Top(id)]; ok {
		return c
	}
	return "#cccccc"
}

// Rainbow samples the cyclical cubehelix rainbow at v in [0, 1) and
// returns it as a hex colour.
func Rainbow(v float64) string {
	if v < 0 || v > 1 {
		v -= math.Floor(v)
	}
	ts := math.Abs(v - 0.5)
	return cubehelix(360*v-100, 1.5-1.5*ts, 0.8-0.9*ts)
}

// cubehelix converts hue h (degrees), saturation s and lightness l to RGB.
func cubehelix(h, s, l float64) string {
	rad := (h + 120) * math.Pi / 180
	a := s * l * (1 - l)
	cosh, sinh := math.Cos(rad), math.Sin(rad)
	r := 255 * (l + a*(-0.14861*cosh+1.78277*sinh))
	g := 255 * (l + a*(-0.29227*cosh-0.90649*sinh))
	b := 255 * (l + a*(1.97294*cosh))
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}
