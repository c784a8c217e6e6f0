package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/heatmap"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// heatRamp runs from no successes to the grid maximum.
var heatRamp = []lipgloss.Color{"236", "24", "31", "37", "71", "149", "220", "208", "196"}

// heatmapCommand creates the heatmap command.
func (c *CLI) heatmapCommand() *cobra.Command {
	var (
		df        dataFlags
		x, y      string
		species   string
		continent string
		binSize   float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "heatmap [data.csv]",
		Short: "Count successful migrations over two weather readings",
		Long: `Count successful migrations over two weather readings.

Records are binned on --x and --y (temperature, humidity, pressure or
windspeed) in steps of --bin, optionally for one species and continent.
Each cell shows the successful migrations in its bin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hopts := c.config.HeatmapOptions()
			if cmd.Flags().Changed("x") {
				a, ok := record.ParseAxis(x)
				if !ok {
					return apperr.New(apperr.ErrCodeInvalidInput, "unknown axis %q", x)
				}
				hopts.X = a
			}
			if cmd.Flags().Changed("y") {
				a, ok := record.ParseAxis(y)
				if !ok {
					return apperr.New(apperr.ErrCodeInvalidInput, "unknown axis %q", y)
				}
				hopts.Y = a
			}
			if cmd.Flags().Changed("bin") {
				hopts.BinSize = binSize
			}
			hopts.Species = species
			hopts.Continent = continent

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

			if hopts.Species != "" && !slices.Contains(heatmap.Categories(ds.Records, record.KeySpecies), hopts.Species) {
				printWarning("No records for species %q", hopts.Species)
			}
			if hopts.Continent != "" && !slices.Contains(heatmap.Categories(ds.Records, record.KeyContinent), hopts.Continent) {
				printWarning("No records for continent %q", hopts.Continent)
			}

			grid := heatmap.Compute(ds.Records, hopts)
			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(grid)
			}
			if grid.Empty() {
				fmt.Fprintln(c.Out, StyleDim.Render("no data"))
				return nil
			}
			fmt.Fprintln(c.Out, StyleTitle.Render(fmt.Sprintf("Successful migrations: %s × %s", grid.Options.Y.Label(), grid.Options.X.Label())))
			fmt.Fprintln(c.Out, heatmapTable(grid))
			if grid.Skipped > 0 {
				printDetail("%d records without both readings skipped", grid.Skipped)
			}
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().StringVar(&x, "x", string(record.AxisTemperature), "x axis: temperature, humidity, pressure, windspeed")
	cmd.Flags().StringVar(&y, "y", string(record.AxisHumidity), "y axis: temperature, humidity, pressure, windspeed")
	cmd.Flags().StringVar(&species, "species", heatmap.All, "species to include")
	cmd.Flags().StringVar(&continent, "continent", heatmap.All, "continent to include")
	cmd.Flags().Float64Var(&binSize, "bin", heatmap.DefaultBinSize, "bin width on both axes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grid as JSON")

	return cmd
}

// heatmapTable lays the grid out with the highest y bin on top. Bins
// without records stay blank; bins with records but no successes show 0.
func heatmapTable(g *heatmap.Grid) string {
	headers := []string{""}
	for _, xv := range g.XBins {
		headers = append(headers, fmt.Sprintf("%g", xv))
	}

	ys := slices.Clone(g.YBins)
	slices.Reverse(ys)
	rows := make([][]string, len(ys))
	levels := make([][]int, len(ys))
	for i, yv := range ys {
		rows[i] = []string{fmt.Sprintf("%g", yv)}
		levels[i] = make([]int, len(g.XBins)+1)
		for j, xv := range g.XBins {
			cell, ok := g.Cell(xv, yv)
			if !ok {
				rows[i] = append(rows[i], "")
				levels[i][j+1] = -1
				continue
			}
			rows[i] = append(rows[i], fmt.Sprint(cell.Success))
			levels[i][j+1] = int(g.Scale(cell.Success) * float64(len(heatRamp)-1))
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleTableHeader.Padding(0, 1)
			}
			lvl := levels[row][col]
			if lvl < 0 {
				return styleTableCell
			}
			return styleTableCell.Background(heatRamp[lvl]).Foreground(colorCloud)
		}).
		Render()
}
