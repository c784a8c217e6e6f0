package pipeline

import (
	"context"
	"fmt"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/nodelink"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/sunburst/sink"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(ctx context.Context, l *Layout, opts Options) (map[string][]byte, error) {
	if opts.View == ViewTree {
		return renderTree(ctx, l, opts)
	}
	return renderSunburst(ctx, l, opts)
}

// renderSunburst draws the settled frame of the focus.
func renderSunburst(ctx context.Context, l *Layout, opts Options) (map[string][]byte, error) {
	nav, err := Navigate(l, opts.Focus, opts.Zoom)
	if err != nil {
		return nil, err
	}
	frame := nav.Snapshot()

	svgOpts := []sink.SVGOption{sink.WithSize(opts.Size)}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}
	if opts.Tooltips {
		svgOpts = append(svgOpts, sink.WithTooltips())
	}

	artifacts := make(map[string][]byte)
	var svg []byte
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(l.Tree, frame)
		case FormatSVG, FormatPNG, FormatPDF:
			if svg == nil {
				svg = sink.RenderSVG(l.Tree, frame, svgOpts...)
			}
			data, err = convert(ctx, svg, format, opts.Scale)
		default:
			return nil, fmt.Errorf("unsupported sunburst format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderTree draws the whole hierarchy as a node-link diagram; the focus
// only applies to the sunburst.
func renderTree(ctx context.Context, l *Layout, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(l.Tree, nodelink.Options{
		Detailed: opts.Detailed,
		Colors:   sink.RainbowPalette(l.Tree),
	})

	artifacts := make(map[string][]byte)
	var svg []byte
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = encodeLayout(l)
		case FormatSVG, FormatPNG, FormatPDF:
			if svg == nil {
				if svg, err = nodelink.RenderSVG(ctx, dot); err != nil {
					break
				}
			}
			data, err = convert(ctx, svg, format, opts.Scale)
		default:
			return nil, fmt.Errorf("unsupported tree format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func convert(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	switch format {
	case FormatPNG:
		return render.ToPNG(ctx, svg, scale)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}
