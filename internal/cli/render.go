package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
)

// renderOpts holds the render-only flags. Unset flags keep the config file
// value.
type renderOpts struct {
	layoutFile string
	output     string
	formats    string
	view       string
	size       float64
	scale      float64
	noLabels   bool
	tooltips   bool
	detailed   bool
}

// renderCommand creates the render command for writing charts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		df dataFlags
		zf zoomFlags
		ro renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Render the sunburst (or the hierarchy diagram) to SVG, PNG, PDF or JSON",
		Long: `Render the sunburst (or the hierarchy diagram) to SVG, PNG, PDF or JSON.

The sunburst is drawn zoomed into --focus with the transition settled.
Only the rings within --max-depth of the focus are drawn and only arcs
larger than --label-min-area are labelled. JSON output lists every arc
with its visibility, label placement and colour for custom front ends.

The tree view (-t tree) draws the hierarchy as a Graphviz diagram instead.

Pass --layout to render a file written by 'layout' without reading the
records again. PNG and PDF need rsvg-convert on the PATH.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(cmd, args, &df, &zf)
			ro.apply(cmd, &opts)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, ro, df.noCache)
		},
	}

	df.register(cmd)
	zf.register(cmd)
	cmd.Flags().StringVar(&ro.layoutFile, "layout", "", "render a layout.json written by 'layout'")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&ro.view, "type", "t", pipeline.DefaultView, "view: sunburst, tree")
	cmd.Flags().Float64Var(&ro.size, "size", pipeline.DefaultSize, "chart width and height in pixels")
	cmd.Flags().Float64Var(&ro.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&ro.noLabels, "no-labels", false, "omit arc labels")
	cmd.Flags().BoolVar(&ro.tooltips, "tooltips", false, "add hover tooltips to arcs")
	cmd.Flags().BoolVar(&ro.detailed, "detailed", false, "show counts and shares in tree nodes")

	return cmd
}

// apply copies the flags the user set onto opts.
func (ro renderOpts) apply(cmd *cobra.Command, opts *pipeline.Options) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(ro.formats)
	}
	if flags.Changed("type") {
		opts.View = ro.view
	}
	if flags.Changed("size") {
		opts.Size = ro.size
	}
	if flags.Changed("scale") {
		opts.Scale = ro.scale
	}
	if flags.Changed("no-labels") {
		opts.NoLabels = ro.noLabels
	}
	if flags.Changed("tooltips") {
		opts.Tooltips = ro.tooltips
	}
	if flags.Changed("detailed") {
		opts.Detailed = ro.detailed
	}
}

// runRender renders from a layout file when one is given, otherwise runs
// the whole pipeline, then writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ro renderOpts, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var (
		artifacts map[string][]byte
		input     = opts.Input
		cached    bool
		summary   string
	)
	if ro.layoutFile != "" {
		data, err := os.ReadFile(ro.layoutFile)
		if err != nil {
			return fmt.Errorf("read layout %s: %w", ro.layoutFile, err)
		}
		lay, err := pipeline.DecodeLayout(data)
		if err != nil {
			return err
		}
		logger.Debug("loaded layout", "file", ro.layoutFile, "nodes", lay.Tree.Len())
		artifacts, cached, err = runner.RenderWithCacheInfo(ctx, lay, opts)
		if err != nil {
			return err
		}
		input = strings.TrimSuffix(ro.layoutFile, ".layout.json")
		summary = statsLine(0, lay.Tree.Excluded, lay.Tree.Len(), cached)
	} else {
		spin := newSpinner(ctx, "Rendering "+opts.Source()+"...")
		spin.Start()
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			spin.StopWithError("Render failed")
			return err
		}
		spin.Stop()
		artifacts = result.Artifacts
		cached = result.CacheInfo.RenderHit
		summary = statsLine(result.Stats.Records, result.Stats.Excluded, result.Stats.NodeCount, cached)
		logger.Debug("pipeline stats",
			"load", result.Stats.LoadTime,
			"layout", result.Stats.LayoutTime,
			"render", result.Stats.RenderTime)
	}

	paths := outputPaths(ro.output, input, opts.View, opts.Formats)
	formats := slices.Sorted(maps.Keys(artifacts))
	printSuccess("Rendered %s view of %s", opts.View, pipeline.FocusString(opts.Focus))
	for _, format := range formats {
		if err := writeOutput(paths[format], artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	fmt.Println(summary)
	return nil
}

// outputPaths names one file per format. A single format goes to output
// as given; otherwise files share the base path. The tree view adds a
// _tree suffix to derived names so it does not overwrite the sunburst.
func outputPaths(output, input, view string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	if output == "" && view == pipeline.ViewTree {
		base += "_tree"
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
