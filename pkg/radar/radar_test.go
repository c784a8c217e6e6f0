package radar

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

const eps = 1e-9

func reading(species, status string, tempC, humidity, pressure, wind float64) record.Record {
	return record.Record{
		Species:         species,
		MigrationStatus: status,
		Temperature:     tempC + 273.15,
		Humidity:        humidity,
		Pressure:        pressure,
		WindSpeed:       wind,
	}
}

func sample() []record.Record {
	return []record.Record{
		reading("Stork", "Successful", 10, 40, 1000, 10),
		reading("Stork", "Successful", 20, 60, 1000, 20),
		reading("Stork", "Failed", 90, 90, 900, 90),
		reading("Crane", "Successful", 30, 80, 1000, 30),
		reading("Hawk", "Successful", 0, 20, 1000, math.NaN()),
	}
}

func series(t *testing.T, c *Chart, species string) Series {
	t.Helper()
	for _, s := range c.Series {
		if s.Species == species {
			return s
		}
	}
	t.Fatalf("series %q missing", species)
	return Series{}
}

func TestComputeMeans(t *testing.T) {
	c := Compute(sample(), nil)

	if !slices.Equal(c.Species(), []string{"Stork", "Crane", "Hawk"}) {
		t.Errorf("species = %v", c.Species())
	}
	stork := series(t, c, "Stork")
	if stork.Count != 2 {
		t.Errorf("Stork count = %d, want 2 successful", stork.Count)
	}
	want := []float64{15, 50, 1000, 15}
	for i, p := range stork.Points {
		if math.Abs(p.Mean-want[i]) > eps {
			t.Errorf("Stork %s mean = %v, want %v", p.Axis, p.Mean, want[i])
		}
	}
}

func TestComputeNormalizes(t *testing.T) {
	c := Compute(sample(), nil)

	// Temperature means: Stork 15, Crane 30, Hawk 0.
	tests := []struct {
		species string
		axis    int
		want    float64
	}{
		{"Hawk", 0, 0},
		{"Stork", 0, 0.5},
		{"Crane", 0, 1},
		{"Stork", 1, 0.5}, // humidity 50 in [20, 80]
		{"Crane", 2, 0},   // pressure equal everywhere
		{"Hawk", 3, 0},    // no wind readings
	}
	for _, tt := range tests {
		s := series(t, c, tt.species)
		if got := s.Points[tt.axis].Value; math.Abs(got-tt.want) > eps {
			t.Errorf("%s %s = %v, want %v", tt.species, s.Points[tt.axis].Axis, got, tt.want)
		}
	}
	if !math.IsNaN(series(t, c, "Hawk").Points[3].Mean) {
		t.Error("species without readings should have a NaN mean")
	}
}

func TestSelectionKeepsNormalization(t *testing.T) {
	all := Compute(sample(), nil)
	some := Compute(sample(), []string{"Stork"})

	if len(some.Series) != 1 {
		t.Fatalf("series = %v", some.Species())
	}
	if !slices.Equal(some.Series[0].Points, series(t, all, "Stork").Points) {
		t.Error("selection changed the normalized values")
	}
}

func TestComputeAxesSubset(t *testing.T) {
	c := Compute(sample(), nil, record.AxisHumidity)
	if len(c.Axes) != 1 || len(c.Series[0].Points) != 1 || c.Series[0].Points[0].Axis != record.AxisHumidity {
		t.Errorf("chart = %+v", c)
	}
}

func TestComputeEmpty(t *testing.T) {
	c := Compute([]record.Record{reading("Stork", "Failed", 1, 1, 1, 1)}, nil)
	if !c.Empty() {
		t.Errorf("chart of failed migrations = %+v", c.Series)
	}
}

func TestChartJSONMissingMean(t *testing.T) {
	c := Compute(sample(), []string{"Hawk"}, record.AxisWindSpeed)
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"mean":null`) {
		t.Errorf("missing wind speed should encode as null: %s", data)
	}
}
