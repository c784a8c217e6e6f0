package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
)

// layoutCommand creates the layout command for computing the sunburst partition.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		df     dataFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [data.csv]",
		Short: "Compute the sunburst partition of the migration hierarchy",
		Long: `Compute the sunburst partition of the migration hierarchy.

The layout command groups the records by reason, species and continent and
assigns every node its angular and radial interval. The output is a
layout.json file that 'render --layout' and 'explore --layout' accept in
place of the records.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(cmd, args, &df, nil)
			l, err := c.load(cmd.Context(), opts, df.noCache)
			if err != nil {
				return err
			}
			defer l.Close()

			outputPath := output
			if outputPath == "" {
				outputPath = basePath("", opts.Input) + ".layout.json"
			}
			if err := partition.WriteJSONFile(outputPath, l.layout.Tree, l.layout.Partition); err != nil {
				return fmt.Errorf("write output %s: %w", outputPath, err)
			}

			printSuccess("Layout complete")
			printFile(outputPath)
			printStats(len(l.dataset.Records), l.layout.Tree.Excluded, l.layout.Tree.Len(), l.layoutHit)
			printNewline()
			printNextStep("Render", appName+" render --layout "+outputPath)
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")

	return cmd
}
