// Package radar compares species across weather readings: the mean of
// each reading over a species' successful migrations, min-max normalized
// per axis across species.
package radar

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// Point is one axis of a species polygon.
type Point struct {
	Axis  record.Axis `json:"axis"`
	Mean  float64     `json:"mean"`  // in the axis's unit; temperature in °C
	Value float64     `json:"value"` // normalized to [0, 1]
}

// MarshalJSON writes a missing mean as null.
func (p Point) MarshalJSON() ([]byte, error) {
	var mean *float64
	if !math.IsNaN(p.Mean) {
		mean = &p.Mean
	}
	return json.Marshal(struct {
		Axis  record.Axis `json:"axis"`
		Mean  *float64    `json:"mean"`
		Value float64     `json:"value"`
	}{p.Axis, mean, p.Value})
}

// Series is one species polygon.
type Series struct {
	Species string  `json:"species"`
	Count   int     `json:"count"` // successful migrations averaged
	Points  []Point `json:"points"`
}

// Chart holds every series over the same axes.
type Chart struct {
	Axes   []record.Axis `json:"axes"`
	Series []Series      `json:"series"`
}

// Reading returns the value of axis a used for the chart. Temperature is
// reported in °C.
func Reading(r record.Record, a record.Axis) float64 {
	if a == record.AxisTemperature {
		return r.TemperatureCelsius()
	}
	return r.Reading(a)
}

// Compute builds the chart from the successful migrations in records.
// Species keep first-encountered order. When selected is non-empty only
// those species are charted; normalization always spans every species so
// a polygon does not change shape as the selection changes. An axis whose
// means are all equal normalizes to 0. NaN readings are left out of the
// mean; a species with no readings on an axis has mean NaN and value 0.
func Compute(records []record.Record, selected []string, axes ...record.Axis) *Chart {
	if len(axes) == 0 {
		axes = record.Axes
	}

	var order []string
	readings := map[string]map[record.Axis][]float64{}
	counts := map[string]int{}
	for _, r := range records {
		if !r.Successful() || r.Species == "" {
			continue
		}
		byAxis, ok := readings[r.Species]
		if !ok {
			byAxis = map[record.Axis][]float64{}
			readings[r.Species] = byAxis
			order = append(order, r.Species)
		}
		counts[r.Species]++
		for _, a := range axes {
			if v := Reading(r, a); !math.IsNaN(v) {
				byAxis[a] = append(byAxis[a], v)
			}
		}
	}

	means := make(map[string][]float64, len(order))
	for _, sp := range order {
		m := make([]float64, len(axes))
		for i, a := range axes {
			m[i] = mean(readings[sp][a])
		}
		means[sp] = m
	}

	chart := &Chart{Axes: slices.Clone(axes)}
	lo, hi := make([]float64, len(axes)), make([]float64, len(axes))
	for i := range axes {
		var col []float64
		for _, sp := range order {
			if v := means[sp][i]; !math.IsNaN(v) {
				col = append(col, v)
			}
		}
		lo[i], hi[i] = bounds(col)
	}

	for _, sp := range order {
		if len(selected) > 0 && !slices.Contains(selected, sp) {
			continue
		}
		s := Series{Species: sp, Count: counts[sp], Points: make([]Point, len(axes))}
		for i, a := range axes {
			m := means[sp][i]
			s.Points[i] = Point{Axis: a, Mean: m, Value: normalize(m, lo[i], hi[i])}
		}
		chart.Series = append(chart.Series, s)
	}
	return chart
}

// Species lists every species in the chart, for the selection set.
func (c *Chart) Species() []string {
	out := make([]string, len(c.Series))
	for i, s := range c.Series {
		out[i] = s.Species
	}
	return out
}

// Empty reports whether the chart has no series.
func (c *Chart) Empty() bool { return len(c.Series) == 0 }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.Mean(xs)
}

func bounds(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return stats.Bounds(xs)
}

func normalize(v, lo, hi float64) float64 {
	if math.IsNaN(v) || hi <= lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
