package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Terminal palette (ANSI 256).
var (
	colorSky   = lipgloss.Color("38")
	colorLeaf  = lipgloss.Color("71")
	colorSand  = lipgloss.Color("179")
	colorRust  = lipgloss.Color("166")
	colorLake  = lipgloss.Color("68")
	colorCloud = lipgloss.Color("254")
	colorStone = lipgloss.Color("246")
	colorSlate = lipgloss.Color("239")
)

// Styles shared by the commands and the explore view.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorSky)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorSky)
	StyleDim       = lipgloss.NewStyle().Foreground(colorSlate)
	StyleValue     = lipgloss.NewStyle().Foreground(colorCloud)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorSky)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorLeaf)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorSand)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorLeaf)
	styleFail    = lipgloss.NewStyle().Foreground(colorRust)
	styleCaution = lipgloss.NewStyle().Foreground(colorSand)
	styleNote    = lipgloss.NewStyle().Foreground(colorStone)
	styleSpinner = lipgloss.NewStyle().Foreground(colorSky)
	styleCommand = lipgloss.NewStyle().Foreground(colorLake)
	styleKey     = lipgloss.NewStyle().Foreground(colorStone).Width(18)

	styleTableHeader = lipgloss.NewStyle().Foreground(colorStone).Bold(true).Padding(0, 1)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorSlate)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	markOK      = "✓"
	markFail    = "✗"
	markCaution = "!"
	markNote    = "›"
	markArrow   = "→"
	markBar     = "█"
)

// say prints one status line led by a coloured mark.
func say(mark string, style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(mark) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { say(markOK, styleOK, format, args...) }
func printError(format string, args ...any) { say(markFail, styleFail, format, args...) }
func printInfo(format string, args ...any) { say(markNote, styleNote, format, args...) }

func printWarning(format string, args ...any) {
	say(markCaution, styleCaution, "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(markArrow) + " " + StyleValue.Render(path))
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }

// statsLine summarises a pipeline run on one dim line: record, excluded
// and node counts (zeros omitted) followed by cached or fresh.
func statsLine(records, excluded, nodes int, cached bool) string {
	var b strings.Builder
	b.WriteString("  ")
	sep := StyleDim.Render(" · ")
	for _, p := range []struct {
		n    int
		noun string
	}{{records, "records"}, {excluded, "incomplete"}, {nodes, "nodes"}} {
		if p.n > 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf("%d %s", p.n, p.noun)) + sep)
		}
	}
	if cached {
		b.WriteString(StyleSuccess.Render("cached"))
	} else {
		b.WriteString(styleNote.Render("fresh"))
	}
	return b.String()
}

func printStats(records, excluded, nodes int, cached bool) {
	fmt.Println(statsLine(records, excluded, nodes, cached))
}

// keyValue renders a fixed-width label followed by its value.
func keyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// renderTable draws rows under headers with a rounded border.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return styleTableCell
		}).
		Render()
}

// bar draws a horizontal bar of width cells scaled by frac in [0, 1].
func bar(frac float64, width int) string {
	n := max(0, min(width, int(frac*float64(width)+0.5)))
	return StyleHighlight.Render(strings.Repeat(markBar, n))
}

// percent formats part of total, or "-" when total is zero.
func percent(part, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}
