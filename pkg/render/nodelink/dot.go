package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's count and share of its parent to its label.
	// When false, only the name is shown.
	Detailed bool

	// MaxDepth limits the diagram to nodes at most this deep. Zero draws
	// the whole tree.
	MaxDepth int

	// Colors fills each node with the colour of its depth-1 ancestor.
	// Nodes without an entry are white.
	Colors map[hierarchy.NodeID]string
}

// ToDOT converts a migration hierarchy to Graphviz DOT format, drawn left to
// right from the root. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(t *hierarchy.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var edges []string
	t.Walk(func(id hierarchy.NodeID) bool {
		if opts.MaxDepth > 0 && t.Depth(id) > opts.MaxDepth {
			return false
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(id), strings.Join(fmtAttrs(t, id, opts), ", "))
		if id != hierarchy.Root {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeName(t.Parent(id)), nodeName(id)))
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeName is the DOT identifier of a node. Category names repeat across
// branches (every species can appear under several reasons), so nodes are
// keyed by ID and named through their label.
func nodeName(id hierarchy.NodeID) string { return "n" + strconv.Itoa(int(id)) }

func fmtLabel(t *hierarchy.Tree, id hierarchy.NodeID, detailed bool) string {
	if !detailed {
		return t.Name(id)
	}
	parts := []string{t.Name(id), fmt.Sprintf("count: %d", t.Value(id))}
	if p := t.Parent(id); p != hierarchy.NoParent && t.Value(p) > 0 {
		parts = append(parts, fmt.Sprintf("share: %.1f%%", 100*float64(t.Value(id))/float64(t.Value(p))))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(t *hierarchy.Tree, id hierarchy.NodeID, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(t, id, opts.Detailed))}
	if c, ok := opts.Colors[t.Top(id)]; ok && id != hierarchy.Root {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	if t.Value(id) == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fontcolor=grey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized root element with one
// whose width and height match the viewBox in pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
