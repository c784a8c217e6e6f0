package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/sunburst/sink"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// zoomCommand creates the zoom command for inspecting a focus.
func (c *CLI) zoomCommand() *cobra.Command {
	var (
		df      dataFlags
		zf      zoomFlags
		asJSON  bool
		showAll bool
		steps   int
	)

	cmd := &cobra.Command{
		Use:   "zoom [data.csv]",
		Short: "Show which arcs are drawn and labelled when zoomed into a node",
		Long: `Show which arcs are drawn and labelled when zoomed into a node.

The table lists every visible arc of the settled view of --focus with its
angular span in degrees, its rings and whether it gets a label. --steps N
also prints N frames of the eased transition from the centre to the focus.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(cmd, args, &df, &zf)
			opts.Zoom.SetDefaults()
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			l, err := c.load(cmd.Context(), opts, df.noCache)
			if err != nil {
				return err
			}
			defer l.Close()

			nav, err := pipeline.Navigate(l.layout, opts.Focus, opts.Zoom)
			if err != nil {
				return err
			}
			frame := nav.Snapshot()
			t := l.layout.Tree

			if asJSON {
				var jopts []sink.JSONOption
				if showAll {
					jopts = append(jopts, sink.WithHidden())
				}
				data, err := sink.RenderJSON(t, frame, jopts...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.Out, string(data))
				return err
			}

			fmt.Fprintln(c.Out, StyleTitle.Render("Focus: "+pipeline.FocusString(opts.Focus)))
			fmt.Fprintln(c.Out, frameTable(t, frame, showAll))
			if steps > 0 {
				fmt.Fprintln(c.Out, StyleTitle.Render("Transition"))
				fmt.Fprintln(c.Out, transitionTable(l.layout, nav.Focus().Node, opts.Zoom, steps))
			}
			return nil
		},
	}

	df.register(cmd)
	zf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the frame as JSON")
	cmd.Flags().BoolVar(&showAll, "all", false, "include hidden arcs")
	cmd.Flags().IntVar(&steps, "steps", 0, "print this many frames of the transition")

	return cmd
}

// frameTable lists the frame's arcs, visible ones only unless all is set.
func frameTable(t *hierarchy.Tree, f zoom.Frame, all bool) string {
	var rows [][]string
	for _, a := range f.Arcs {
		if !a.ArcVisible && !all {
			continue
		}
		rows = append(rows, []string{
			pipeline.FocusString(t.Path(a.ID)),
			fmt.Sprint(t.Value(a.ID)),
			fmt.Sprintf("%.1f°–%.1f°", degrees(a.Arc.X0), degrees(a.Arc.X1)),
			fmt.Sprintf("%.2f–%.2f", a.Arc.Y0, a.Arc.Y1),
			yesNo(a.ArcVisible),
			yesNo(a.LabelVisible),
		})
	}
	return renderTable([]string{"Node", "Count", "Angle", "Rings", "Drawn", "Label"}, rows)
}

// transitionTable replays the zoom from the root to focus, sampling the
// eased run at steps evenly spaced instants.
func transitionTable(l *pipeline.Layout, focus hierarchy.NodeID, opts zoom.Options, steps int) string {
	nav := zoom.New(l.Tree, l.Partition, opts)
	var rows [][]string
	if _, ok := nav.DrillIn(focus); !ok {
		return renderTable([]string{"Progress", "Focus angle", "Drawn arcs"}, rows)
	}
	for i := 1; i <= steps; i++ {
		p := zoom.CubicInOut(float64(i) / float64(steps))
		f := nav.Advance(p)
		fa := f.Arcs[focus].Arc
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", p),
			fmt.Sprintf("%.1f°–%.1f°", degrees(fa.X0), degrees(fa.X1)),
			fmt.Sprint(len(f.Visible())),
		})
	}
	return renderTable([]string{"Progress", "Focus angle", "Drawn arcs"}, rows)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func yesNo(b bool) string {
	if b {
		return StyleSuccess.Render("yes")
	}
	return StyleDim.Render("no")
}
