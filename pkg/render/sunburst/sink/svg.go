package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// DefaultSize is the width and height of the chart in pixels.
const DefaultSize = 600

// Fill opacities of visible arcs.
const (
	InnerOpacity = 0.6
	LeafOpacity  = 0.4
)

const sunburstCSS = `
    .arc { transition: fill-opacity 0.2s ease; }
    .arc:hover { fill-opacity: 0.9; }
    .label { pointer-events: none; user-select: none; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size     float64
	labels   bool
	tooltips bool
	palette  Palette
}

func WithSize(px float64) SVGOption { return func(r *svgRenderer) { r.size = px } }
func WithoutLabels() SVGOption      { return func(r *svgRenderer) { r.labels = false } }
func WithTooltips() SVGOption       { return func(r *svgRenderer) { r.tooltips = true } }
func WithPalette(p Palette) SVGOption {
	return func(r *svgRenderer) { r.palette = p }
}

// RenderSVG draws one frame of the sunburst of t.
//
// The viewBox is centred on the origin. Radial units map to pixels so that
// the frame's outermost visible ring touches the edge of the chart. Only
// visible arcs are emitted; labels are emitted for arcs large enough to
// hold one. A circle covering the focus disc sits on top, marking where a
// click zooms out.
func RenderSVG(t *hierarchy.Tree, f zoom.Frame, opts ...SVGOption) []byte {
	r := newSVGRenderer(t, opts...)
	radius := r.size / 2
	scale := radius / f.MaxDepth

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f" style="font: 12px sans-serif">`+"\n",
		-radius, -radius, r.size, r.size, r.size, r.size)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sunburstCSS)

	buf.WriteString("  <g>\n")
	t.Walk(func(id hierarchy.NodeID) bool {
		if id == hierarchy.Root || !f.Arcs[id].ArcVisible {
			return true
		}
		r.renderArc(&buf, t, f, id, scale)
		return true
	})
	buf.WriteString("  </g>\n")

	if r.labels {
		buf.WriteString(`  <g class="label" text-anchor="middle">` + "\n")
		t.Walk(func(id hierarchy.NodeID) bool {
			if id == hierarchy.Root || !f.Arcs[id].LabelVisible {
				return true
			}
			l := zoom.LabelTransform(f.Arcs[id].Arc)
			fmt.Fprintf(&buf, `    <text dy="0.35em" transform="%s">%s</text>`+"\n", l.SVG(scale), escapeXML(t.Name(id)))
			return true
		})
		buf.WriteString("  </g>\n")
	}

	fmt.Fprintf(&buf, `  <circle class="parent" r="%.2f" fill="none" pointer-events="all">`, scale)
	if r.tooltips {
		fmt.Fprintf(&buf, "<title>%s</title>", escapeXML(zoom.Tooltip(t, f.Focus)))
	}
	buf.WriteString("</circle>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(t *hierarchy.Tree, opts ...SVGOption) svgRenderer {
	r := svgRenderer{size: DefaultSize, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 {
		r.size = DefaultSize
	}
	if r.palette == nil {
		r.palette = RainbowPalette(t)
	}
	return r
}

func (r *svgRenderer) renderArc(buf *bytes.Buffer, t *hierarchy.Tree, f zoom.Frame, id hierarchy.NodeID, scale float64) {
	d := ArcPath(f.Padded(id), scale)
	if d == "" {
		return
	}
	opacity := LeafOpacity
	if !t.IsLeaf(id) {
		opacity = InnerOpacity
	}
	fmt.Fprintf(buf, `    <path class="arc" id="node-%d" d="%s" fill="%s" fill-opacity="%.1f">`,
		id, d, r.palette.Color(t, id), opacity)
	if r.tooltips {
		fmt.Fprintf(buf, "<title>%s</title>", escapeXML(zoom.Tooltip(t, id)))
	}
	buf.WriteString("</path>\n")
}

// ArcPath returns the SVG path of an annular sector. Angles run clockwise
// from twelve o'clock; radii are a's ring bounds times scale, with the outer
// edge pulled in by one pixel to leave a gap between rings. It returns ""
// for an arc with no area.
func ArcPath(a partition.Arc, scale float64) string {
	r0 := a.Y0 * scale
	r1 := math.Max(r0, a.Y1*scale-1)
	if a.Width() <= 0 || r1 <= 0 {
		return ""
	}

	var b bytes.Buffer
	if a.Width() >= partition.FullCircle-1e-9 {
		fmt.Fprintf(&b, "M0,%.3fA%.3f,%.3f 0 1,1 0,%.3fA%.3f,%.3f 0 1,1 0,%.3fZ", -r1, r1, r1, r1, r1, r1, -r1)
		if r0 > 0 {
			fmt.Fprintf(&b, "M0,%.3fA%.3f,%.3f 0 1,0 0,%.3fA%.3f,%.3f 0 1,0 0,%.3fZ", -r0, r0, r0, r0, r0, r0, -r0)
		}
		return b.String()
	}

	large := 0
	if a.Width() > math.Pi {
		large = 1
	}
	sx, sy := polar(r1, a.X0)
	ex, ey := polar(r1, a.X1)
	fmt.Fprintf(&b, "M%.3f,%.3fA%.3f,%.3f 0 %d,1 %.3f,%.3f", sx, sy, r1, r1, large, ex, ey)
	if r0 > 0 {
		ix, iy := polar(r0, a.X1)
		jx, jy := polar(r0, a.X0)
		fmt.Fprintf(&b, "L%.3f,%.3fA%.3f,%.3f 0 %d,0 %.3f,%.3f", ix, iy, r0, r0, large, jx, jy)
	} else {
		b.WriteString("L0,0")
	}
	b.WriteString("Z")
	return b.String()
}

func polar(r, angle float64) (x, y float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
