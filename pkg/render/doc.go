// Package render converts rendered migration charts between output formats.
//
// # Overview
//
// The chart renderers live in subpackages:
//
//   - [sunburst/sink]: the zoomable sunburst as SVG or a JSON frame
//   - [nodelink]: the migration hierarchy as a Graphviz tree
//
// Both produce SVG. The [ToPDF] and [ToPNG] functions convert any SVG to
// other formats using the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(tree, frame)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [sunburst/sink]: github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/sunburst/sink
// [nodelink]: github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/nodelink
package render
