package linked

import (
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// Count is one category of a group-by.
type Count struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Counts is a group-by result in first-encountered category order.
// An empty Counts is a valid result meaning no records matched.
type Counts []Count

// Map returns the counts keyed by category.
func (c Counts) Map() map[string]int {
	m := make(map[string]int, len(c))
	for _, e := range c {
		m[e.Category] = e.Count
	}
	return m
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	n := 0
	for _, e := range c {
		n += e.Count
	}
	return n
}

// Empty reports whether nothing was counted.
func (c Counts) Empty() bool { return len(c) == 0 }

// MostCommon returns the category with the highest count. Ties go to the
// category encountered first. ok is false for empty counts.
func (c Counts) MostCommon() (Count, bool) {
	if len(c) == 0 {
		return Count{}, false
	}
	best := c[0]
	for _, e := range c[1:] {
		if e.Count > best.Count {
			best = e
		}
	}
	return best, true
}

// Matches reports whether r lies under path: its reason, species and
// continent equal the path's names position by position. An empty path
// matches every record.
func Matches(r record.Record, path []string) bool {
	for i, name := range path {
		if i >= len(record.HierarchyKeys) {
			return false
		}
		if r.Category(record.HierarchyKeys[i]) != name {
			return false
		}
	}
	return true
}

// Filter returns the records under path, in input order.
func Filter(records []record.Record, path []string) []record.Record {
	if len(path) == 0 {
		return records
	}
	var out []record.Record
	for _, r := range records {
		if Matches(r, path) {
			out = append(out, r)
		}
	}
	return out
}

// GroupBy counts records by the value of key.
func GroupBy(records []record.Record, key record.Key) Counts {
	var out Counts
	index := map[string]int{}
	for _, r := range records {
		cat := r.Category(key)
		if i, ok := index[cat]; ok {
			out[i].Count++
			continue
		}
		index[cat] = len(out)
		out = append(out, Count{Category: cat, Count: 1})
	}
	return out
}

// Aggregate counts, by key, the records under the focus node of t.
func Aggregate(t *hierarchy.Tree, focus hierarchy.NodeID, records []record.Record, key record.Key) Counts {
	return GroupBy(Filter(records, t.Path(focus)), key)
}
