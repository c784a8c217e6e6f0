package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
)

// treeCommand creates the tree command for printing the counted hierarchy.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		df    dataFlags
		focus string
		depth int
	)

	cmd := &cobra.Command{
		Use:   "tree [data.csv]",
		Short: "Print the reason → species → continent hierarchy with counts",
		Long: `Print the reason → species → continent hierarchy with counts.

Each node shows its number of migrations and its share of the printed
subtree. Use --focus to print one reason or species only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(cmd, args, &df, nil)
			l, err := c.load(cmd.Context(), opts, df.noCache)
			if err != nil {
				return err
			}
			defer l.Close()

			t := l.layout.Tree
			id := hierarchy.Root
			if focus != "" {
				path := parseFocus(focus)
				var ok bool
				if id, ok = t.Find(path...); !ok {
					return apperr.New(apperr.ErrCodeNodeNotFound, "no node at %s", pipeline.FocusString(path))
				}
			}

			fmt.Fprintln(c.Out, hierarchyTree(t, id, depth))
			printStats(len(l.dataset.Records), t.Excluded, t.Len(), l.layoutHit)
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().StringVar(&focus, "focus", "", "print the subtree at Reason/Species only")
	cmd.Flags().IntVar(&depth, "depth", 0, "levels to print below the top node (0 for all)")

	return cmd
}

// hierarchyTree draws the subtree at top down to depth levels (all when
// depth is 0). Shares are relative to top.
func hierarchyTree(t *hierarchy.Tree, top hierarchy.NodeID, depth int) *tree.Tree {
	total := t.Value(top)
	var build func(id hierarchy.NodeID, level int) *tree.Tree
	build = func(id hierarchy.NodeID, level int) *tree.Tree {
		node := tree.Root(nodeLabel(t, id, total)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(StyleDim)
		if depth > 0 && level >= depth {
			return node
		}
		for _, ch := range t.Children(id) {
			if t.IsLeaf(ch) || (depth > 0 && level+1 >= depth) {
				node.Child(nodeLabel(t, ch, total))
				continue
			}
			node.Child(build(ch, level+1))
		}
		return node
	}
	return build(top, 0).RootStyle(StyleTitle)
}

func nodeLabel(t *hierarchy.Tree, id hierarchy.NodeID, total int) string {
	return fmt.Sprintf("%s %s %s",
		t.Name(id),
		StyleNumber.Render(fmt.Sprint(t.Value(id))),
		StyleDim.Render(percent(t.Value(id), total)))
}
