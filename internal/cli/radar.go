package cli

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/radar"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// radarCommand creates the radar command for comparing species.
func (c *CLI) radarCommand() *cobra.Command {
	var (
		df      dataFlags
		species []string
		axes    []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "radar [data.csv]",
		Short: "Compare the weather of successful migrations across species",
		Long: `Compare the weather of successful migrations across species.

For each species the mean temperature (°C), humidity, pressure and wind
speed of its successful migrations are shown, with a bar scaled between
the lowest and highest mean of all species.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var readings []record.Axis
			for _, a := range axes {
				ax, ok := record.ParseAxis(a)
				if !ok {
					return apperr.New(apperr.ErrCodeInvalidInput, "unknown axis %q", a)
				}
				readings = append(readings, ax)
			}

			opts := c.pipelineOptions(cmd, args, &df, nil)
			runner, err := c.newRunner(cmd.Context(), df.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			ds, err := runner.Load(cmd.Context(), opts)
			if err != nil {
				return err
			}

			chart := radar.Compute(ds.Records, species, readings...)
			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(chart)
			}
			if chart.Empty() {
				fmt.Fprintln(c.Out, StyleDim.Render("no data"))
				return nil
			}
			fmt.Fprintln(c.Out, radarTable(chart))
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().StringSliceVarP(&species, "species", "s", nil, "species to show (default: all)")
	cmd.Flags().StringSliceVar(&axes, "axis", nil, "readings to compare (default: all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the chart as JSON")

	return cmd
}

// radarTable shows one row per species and one column per axis.
func radarTable(chart *radar.Chart) string {
	headers := []string{"Species", "Migrations"}
	for _, a := range chart.Axes {
		label := a.Label()
		if a == record.AxisTemperature {
			label = "Temperature (°C)"
		}
		headers = append(headers, label)
	}
	rows := make([][]string, len(chart.Series))
	for i, s := range chart.Series {
		row := []string{s.Species, fmt.Sprint(s.Count)}
		for _, p := range s.Points {
			if math.IsNaN(p.Mean) {
				row = append(row, StyleDim.Render("-"))
				continue
			}
			row = append(row, fmt.Sprintf("%7.1f %s", p.Mean, bar(p.Value, 8)))
		}
		rows[i] = row
	}
	return renderTable(headers, rows)
}
