// Package sink writes frames of a zoomable sunburst to output formats.
//
// A frame comes from [zoom.Navigator]: every node's current arc plus its
// visibility. [RenderSVG] draws the frame as a static chart in which each
// reason and its descendants share one colour, inner rings are more opaque
// than leaves, and labels are rotated to read outwards. [RenderJSON]
// exports the same frame for other tools.
//
//	nav := zoom.New(tree, layout, zoom.Options{})
//	nav.DrillIn(food)
//	svg := sink.RenderSVG(tree, nav.Settle(), sink.WithTooltips())
//
// PNG and PDF output go through [render.ToPNG] and [render.ToPDF].
//
// [zoom.Navigator]: github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom#Navigator
// [render.ToPNG]: github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render#ToPNG
// [render.ToPDF]: github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render#ToPDF
package sink
