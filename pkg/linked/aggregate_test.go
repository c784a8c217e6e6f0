package linked

import (
	"reflect"
	"testing"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

func sampleRecords() []record.Record {
	return []record.Record{
		{Reason: "Food", Species: "A", Continent: "EU", Habitat: "Wetland", WeatherCondition: "Sunny"},
		{Reason: "Food", Species: "A", Continent: "EU", Habitat: "Forest", WeatherCondition: "Rainy"},
		{Reason: "Food", Species: "B", Continent: "AS", Habitat: "Forest", WeatherCondition: "Sunny"},
		{Reason: "Breeding", Species: "A", Continent: "AF", Habitat: "Grassland", WeatherCondition: "Windy"},
	}
}

func TestAggregateSpeciesByContinent(t *testing.T) {
	records := sampleRecords()[:3]
	tree := hierarchy.Build(records)
	a, _ := tree.Find("Food", "A")

	got := Aggregate(tree, a, records, record.KeyContinent)
	if want := map[string]int{"EU": 2}; !reflect.DeepEqual(got.Map(), want) {
		t.Errorf("Aggregate = %v, want %v", got.Map(), want)
	}
}

func TestAggregateByFocusDepth(t *testing.T) {
	records := sampleRecords()
	tree := hierarchy.Build(records)
	food, _ := tree.Find("Food")
	leaf, _ := tree.Find("Food", "A", "EU")

	tests := []struct {
		name  string
		focus hierarchy.NodeID
		key   record.Key
		want  Counts
	}{
		{"root is every record", hierarchy.Root, record.KeyReason, Counts{{"Food", 3}, {"Breeding", 1}}},
		{"reason", food, record.KeyHabitat, Counts{{"Wetland", 1}, {"Forest", 2}}},
		{"leaf", leaf, record.KeyWeather, Counts{{"Sunny", 1}, {"Rainy", 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tree, tt.focus, records, tt.key)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterIsPositional(t *testing.T) {
	records := sampleRecords()

	// Species "A" appears under two reasons; only the path's reason counts.
	got := Filter(records, []string{"Breeding", "A"})
	if len(got) != 1 || got[0].Continent != "AF" {
		t.Errorf("Filter = %+v", got)
	}
	if got := Filter(records, []string{"A"}); len(got) != 0 {
		t.Errorf("species name in reason position matched %d records", len(got))
	}
	if got := Filter(records, nil); len(got) != len(records) {
		t.Errorf("empty path matched %d, want all %d", len(got), len(records))
	}
	if got := Filter(records, []string{"Food", "A", "EU", "extra"}); len(got) != 0 {
		t.Error("paths deeper than the hierarchy match nothing")
	}
}

func TestAggregateEmpty(t *testing.T) {
	tree := hierarchy.Build(sampleRecords())
	food, _ := tree.Find("Food")

	got := Aggregate(tree, food, nil, record.KeyHabitat)
	if !got.Empty() || got.Total() != 0 || len(got.Map()) != 0 {
		t.Errorf("Aggregate over no records = %v", got)
	}
	if _, ok := got.MostCommon(); ok {
		t.Error("MostCommon of empty counts should report !ok")
	}
}

func TestMostCommonTieBreak(t *testing.T) {
	tests := []struct {
		name string
		in   Counts
		want string
	}{
		{"clear winner", Counts{{"a", 1}, {"b", 3}, {"c", 2}}, "b"},
		{"tie goes to first", Counts{{"a", 2}, {"b", 2}}, "a"},
		{"later tie does not win", Counts{{"a", 1}, {"b", 3}, {"c", 3}}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.MostCommon()
			if !ok || got.Category != tt.want {
				t.Errorf("MostCommon = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupByFirstEncounteredOrder(t *testing.T) {
	records := []record.Record{
		{Habitat: "Coastal"}, {Habitat: "Urban"}, {Habitat: "Coastal"}, {Habitat: ""},
	}
	got := GroupBy(records, record.KeyHabitat)
	want := Counts{{"Coastal", 2}, {"Urban", 1}, {"", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupBy = %v, want %v", got, want)
	}
	if got.Total() != 4 {
		t.Errorf("Total = %d", got.Total())
	}
}
