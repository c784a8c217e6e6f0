package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/linked"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// frameInterval paces transition frames.
const frameInterval = time.Second / 60

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSky)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorCloud)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorSlate)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSlate).Padding(0, 1)
)

// exploreCommand creates the interactive explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		df         dataFlags
		zf         zoomFlags
		layoutFile string
		slow       bool
	)

	cmd := &cobra.Command{
		Use:   "explore [data.csv]",
		Short: "Zoom through the sunburst interactively",
		Long: `Zoom through the sunburst interactively.

The explorer lists the children of the focus with bars that follow the
arcs while a zoom transition runs. A side panel shows the story card and
the habitats and weather of the focus.

Keys: ↑/↓ select, enter zoom in, alt+enter zoom in slowly, backspace zoom
out, s toggle slow motion, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := c.pipelineOptions(cmd, args, &df, &zf)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}

			var (
				lay     *pipeline.Layout
				records []record.Record
			)
			if layoutFile != "" {
				data, err := os.ReadFile(layoutFile)
				if err != nil {
					return fmt.Errorf("read layout %s: %w", layoutFile, err)
				}
				if lay, err = pipeline.DecodeLayout(data); err != nil {
					return err
				}
			} else {
				l, err := c.load(ctx, opts, df.noCache)
				if err != nil {
					return err
				}
				defer l.Close()
				lay, records = l.layout, l.dataset.Records
			}

			nav, err := pipeline.Navigate(lay, opts.Focus, opts.Zoom)
			if err != nil {
				return err
			}
			nav.SetSlow(slow)

			m := newExploreModel(nav, records)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	df.register(cmd)
	zf.register(cmd)
	cmd.Flags().StringVar(&layoutFile, "layout", "", "explore a layout.json written by 'layout' (no side panel)")
	cmd.Flags().BoolVar(&slow, "slow", false, "start in slow motion")

	return cmd
}

// =============================================================================
// exploreModel - Interactive sunburst navigation
// =============================================================================

// tickMsg advances a running transition.
type tickMsg time.Time

// exploreModel is the bubbletea model of the explorer. It owns the
// navigator and only touches it from Update.
type exploreModel struct {
	nav     *zoom.Navigator
	tree    *hierarchy.Tree
	tracker *linked.Tracker // nil without records
	frame   zoom.Frame
	ease    zoom.Ease

	cursor  int
	status  string
	ticking bool
}

func newExploreModel(nav *zoom.Navigator, records []record.Record) *exploreModel {
	m := &exploreModel{
		nav:   nav,
		tree:  nav.Tree(),
		frame: nav.Snapshot(),
		ease:  zoom.CubicInOut,
	}
	if records != nil {
		m.tracker = linked.NewTracker(m.tree, records, nav.Focus().Node, nil)
	}
	nav.Subscribe(func(ch zoom.Change) {
		m.cursor = 0
		if m.tracker != nil {
			m.tracker.Refocus(ch.To)
		}
	})
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.tree.NumChildren(m.nav.Focus().Node)-1 {
				m.cursor++
			}
		case "enter", "right", "l":
			return m, m.drillIn(false)
		case "alt+enter":
			return m, m.drillIn(true)
		case "backspace", "left", "h":
			_, ok := m.nav.ClickParent()
			return m, m.started(ok, "Already at the centre")
		case "s":
			m.nav.SetSlow(!m.nav.Slow())
		}
	case tickMsg:
		m.frame = m.nav.AdvanceTo(time.Time(msg), m.ease)
		if _, running := m.nav.Running(); running {
			return m, tick()
		}
		m.ticking = false
	}
	return m, nil
}

// drillIn zooms into the selected child. once slows just this transition.
func (m *exploreModel) drillIn(once bool) tea.Cmd {
	kids := m.tree.Children(m.nav.Focus().Node)
	if len(kids) == 0 {
		return m.started(false, "Nothing to zoom into")
	}
	id := kids[m.cursor]
	if once {
		prev := m.nav.Slow()
		m.nav.SetSlow(true)
		defer m.nav.SetSlow(prev)
	}
	_, ok := m.nav.Click(id)
	return m.started(ok, fmt.Sprintf("%s has no children to zoom into", m.tree.Name(id)))
}

// started starts ticking after an accepted transition, or shows why it
// was rejected.
func (m *exploreModel) started(ok bool, rejected string) tea.Cmd {
	if !ok {
		m.status = rejected
		return nil
	}
	m.status = ""
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *exploreModel) View() string {
	focus := m.nav.Focus()

	var left strings.Builder
	left.WriteString(StyleTitle.Render(m.tree.Name(hierarchy.Root)))
	for _, name := range focus.Path {
		left.WriteString(StyleDim.Render(" " + markArrow + " "))
		left.WriteString(StyleTitle.Render(name))
	}
	left.WriteString("\n")
	left.WriteString(m.progressLine())
	left.WriteString("\n\n")

	for i, id := range m.tree.Children(focus.Node) {
		a := m.frame.Arcs[id].Arc
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		if m.tree.IsLeaf(id) {
			style = listDimStyle
			if i == m.cursor {
				style = style.Bold(true)
			}
		}
		line := fmt.Sprintf("%s%-22s %6d ", cursor, m.tree.Name(id), m.tree.Value(id))
		left.WriteString(style.Render(line))
		left.WriteString(bar(a.Width()/partition.FullCircle, barWidth))
		left.WriteString("\n")
	}

	left.WriteString("\n")
	if m.status != "" {
		left.WriteString(StyleWarning.Render(m.status) + "\n")
	}
	left.WriteString(listDimStyle.Render("↑/↓ select  ⏎ zoom in  alt+⏎ slow  ⌫ zoom out  s slow motion  q quit"))

	if m.tracker == nil {
		return left.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "  ", panelStyle.Render(m.sidePanel()))
}

func (m *exploreModel) progressLine() string {
	mode := StyleDim.Render("normal speed")
	if m.nav.Slow() {
		mode = StyleWarning.Render("slow motion")
	}
	if _, running := m.nav.Running(); !running {
		return mode
	}
	return mode + " " + bar(m.nav.Progress(), barWidth)
}

func (m *exploreModel) sidePanel() string {
	v := m.tracker.View()
	var b strings.Builder
	b.WriteString(storyCard(m.tree, v))
	for _, k := range linked.DefaultKeys {
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(string(k)) + "\n")
		counts := v.Groups[k]
		if counts.Empty() {
			b.WriteString(StyleDim.Render(linked.NoData) + "\n")
			continue
		}
		top, _ := counts.MostCommon()
		for _, c := range counts {
			b.WriteString(fmt.Sprintf("%-14s %5d ", c.Category, c.Count))
			b.WriteString(bar(float64(c.Count)/float64(top.Count), 12) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
