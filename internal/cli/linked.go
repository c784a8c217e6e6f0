package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/linked"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

const barWidth = 24

// linkedCommand creates the linked command for the side views of a focus.
func (c *CLI) linkedCommand() *cobra.Command {
	var (
		df     dataFlags
		focus  string
		keys   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "linked [data.csv]",
		Short: "Summarise the habitats and weather behind a node",
		Long: `Summarise the habitats and weather behind a node.

The records under --focus are grouped by each --key (habitat and weather by
default) and printed with a story card naming the most common habitat and
the most frequent weather.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupKeys, err := parseKeys(keys)
			if err != nil {
				return err
			}
			opts := c.pipelineOptions(cmd, args, &df, nil)
			l, err := c.load(cmd.Context(), opts, df.noCache)
			if err != nil {
				return err
			}
			defer l.Close()

			t := l.layout.Tree
			path := parseFocus(focus)
			id, ok := t.Find(path...)
			if !ok {
				return apperr.New(apperr.ErrCodeNodeNotFound, "no node at %s", pipeline.FocusString(path))
			}
			view := linked.Compute(t, id, l.dataset.Records, groupKeys...)

			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			fmt.Fprint(c.Out, formatView(t, view, groupKeys))
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().StringVar(&focus, "focus", "", "node to summarise, as Reason/Species/Continent")
	cmd.Flags().StringSliceVarP(&keys, "key", "k", nil, "fields to group by: habitat, weather, reason, species, continent, status")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")

	return cmd
}

// parseKeys resolves key names, defaulting to the side views.
func parseKeys(names []string) ([]record.Key, error) {
	if len(names) == 0 {
		return linked.DefaultKeys, nil
	}
	keys := make([]record.Key, 0, len(names))
	for _, n := range names {
		k, ok := record.ParseKey(n)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "unknown key %q", n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// formatView renders the story card and one count table per key.
func formatView(t *hierarchy.Tree, v linked.View, keys []record.Key) string {
	var b strings.Builder
	b.WriteString(storyCard(t, v))
	for _, k := range keys {
		counts := v.Groups[k]
		b.WriteString("\n")
		b.WriteString(StyleTitle.Render(strings.ToUpper(string(k)[:1])+string(k)[1:]) + "\n")
		if counts.Empty() {
			b.WriteString(StyleDim.Render(linked.NoData) + "\n")
			continue
		}
		b.WriteString(countsTable(counts) + "\n")
	}
	return b.String()
}

func storyCard(t *hierarchy.Tree, v linked.View) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(v.Story.Name) + "\n")
	b.WriteString(keyValue("Path", pipeline.FocusString(v.Path)) + "\n")
	b.WriteString(keyValue("Total migrations", fmt.Sprint(v.Story.Total)) + "\n")
	b.WriteString(keyValue("Common habitat", v.Story.CommonHabitat) + "\n")
	b.WriteString(keyValue("Frequent weather", v.Story.FrequentWeather) + "\n")
	if v.Focus != hierarchy.Root {
		b.WriteString(keyValue("Share of all", percent(v.Story.Total, t.Value(hierarchy.Root))) + "\n")
	}
	return b.String()
}

func countsTable(counts linked.Counts) string {
	total := counts.Total()
	top, _ := counts.MostCommon()
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{
			c.Category,
			fmt.Sprint(c.Count),
			percent(c.Count, total),
			bar(float64(c.Count)/float64(top.Count), barWidth),
		}
	}
	return renderTable([]string{"Category", "Count", "Share", ""}, rows)
}
