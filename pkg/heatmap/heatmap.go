// Package heatmap bins migration records on two readings and counts the
// successful migrations in each cell.
package heatmap

import (
	"cmp"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// All disables a species or continent filter.
const All = "All"

// DefaultBinSize is the width of a cell on both axes, in each axis's unit.
const DefaultBinSize = 5.0

// Options selects the records and axes of a heatmap.
type Options struct {
	X, Y      record.Axis
	Species   string // "" or All for every species
	Continent string // "" or All for every continent
	BinSize   float64
}

// SetDefaults fills zero-valued options: temperature against humidity,
// no filters, bins of DefaultBinSize.
func (o *Options) SetDefaults() {
	if o.X == "" {
		o.X = record.AxisTemperature
	}
	if o.Y == "" {
		o.Y = record.AxisHumidity
	}
	if o.Species == "" {
		o.Species = All
	}
	if o.Continent == "" {
		o.Continent = All
	}
	if o.BinSize <= 0 {
		o.BinSize = DefaultBinSize
	}
}

// Cell is one bin. X and Y are the lower edges of the bin.
type Cell struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Success int     `json:"success"`
	Total   int     `json:"total"`
}

// Grid is a computed heatmap. Cells exist for every bin holding at least
// one matching record, even when none of them succeeded.
type Grid struct {
	Options Options   `json:"options"`
	XBins   []float64 `json:"x_bins"`
	YBins   []float64 `json:"y_bins"`
	Cells   []Cell    `json:"cells"`
	Max     int       `json:"max"` // largest Success, the top of the colour scale
	Skipped int       `json:"skipped"`
}

// Empty reports whether no record fell into any bin.
func (g *Grid) Empty() bool { return len(g.Cells) == 0 }

// Cell returns the cell at the given lower edges.
func (g *Grid) Cell(x, y float64) (Cell, bool) {
	for _, c := range g.Cells {
		if c.X == x && c.Y == y {
			return c, true
		}
	}
	return Cell{}, false
}

// Bin returns the lower edge of the bin holding v.
func Bin(v, size float64) float64 { return math.Floor(v/size) * size }

// Compute bins the records matching opts. Records with a missing (NaN)
// reading on either axis are skipped and counted in Grid.Skipped.
func Compute(records []record.Record, opts Options) *Grid {
	opts.SetDefaults()

	type key struct{ x, y float64 }
	index := map[key]int{}
	g := &Grid{Options: opts}

	for _, r := range records {
		if !matches(opts.Species, r.Species) || !matches(opts.Continent, r.Continent) {
			continue
		}
		xv, yv := r.Reading(opts.X), r.Reading(opts.Y)
		if math.IsNaN(xv) || math.IsNaN(yv) {
			g.Skipped++
			continue
		}
		k := key{Bin(xv, opts.BinSize), Bin(yv, opts.BinSize)}
		i, ok := index[k]
		if !ok {
			i = len(g.Cells)
			index[k] = i
			g.Cells = append(g.Cells, Cell{X: k.x, Y: k.y})
		}
		g.Cells[i].Total++
		if r.Successful() {
			g.Cells[i].Success++
		}
	}

	g.XBins = distinct(g.Cells, func(c Cell) float64 { return c.X })
	g.YBins = distinct(g.Cells, func(c Cell) float64 { return c.Y })
	slices.SortFunc(g.Cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	if len(g.Cells) > 0 {
		success := make([]float64, len(g.Cells))
		for i, c := range g.Cells {
			success[i] = float64(c.Success)
		}
		_, hi := stats.Bounds(success)
		g.Max = int(hi)
	}
	return g
}

// Scale maps a success count onto [0, 1] for colouring. An all-zero grid
// maps everything to 0.
func (g *Grid) Scale(success int) float64 {
	if g.Max <= 0 {
		return 0
	}
	return float64(success) / float64(g.Max)
}

func matches(filter, v string) bool { return filter == All || filter == v }

func distinct(cells []Cell, f func(Cell) float64) []float64 {
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		out = append(out, f(c))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Categories lists the distinct values of key, sorted, behind All. It
// feeds the species and continent filter choices.
func Categories(records []record.Record, key record.Key) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range records {
		v := r.Category(key)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	slices.Sort(out)
	return append([]string{All}, out...)
}
