package linked

import (
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// NoData is how an empty aggregation is reported to users.
const NoData = "no data"

// DefaultKeys are the secondary views shown next to the sunburst.
var DefaultKeys = []record.Key{record.KeyHabitat, record.KeyWeather}

// View is the set of secondary aggregations for one focus.
type View struct {
	Focus   hierarchy.NodeID      `json:"focus"`
	Name    string                `json:"name"`
	Path    []string              `json:"path"`
	Matched int                   `json:"matched"`
	Groups  map[record.Key]Counts `json:"groups"`
	Story   Story                 `json:"story"`
}

// Compute builds the view of focus, filtering records once for all keys.
func Compute(t *hierarchy.Tree, focus hierarchy.NodeID, records []record.Record, keys ...record.Key) View {
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	path := t.Path(focus)
	matched := Filter(records, path)
	v := View{
		Focus:   focus,
		Name:    t.Name(focus),
		Path:    path,
		Matched: len(matched),
		Groups:  make(map[record.Key]Counts, len(keys)),
	}
	for _, k := range keys {
		v.Groups[k] = GroupBy(matched, k)
	}
	v.Story = storyOf(v.Name, matched)
	return v
}

// Story is the summary card of a focus.
type Story struct {
	Name            string `json:"name"`
	Total           int    `json:"total"`
	CommonHabitat   string `json:"common_habitat"`
	FrequentWeather string `json:"frequent_weather"`
}

// StoryOf summarises the records under focus: how many there are, and the
// most common habitat and weather among them. Both are [NoData] when no
// record matches.
func StoryOf(t *hierarchy.Tree, focus hierarchy.NodeID, records []record.Record) Story {
	return storyOf(t.Name(focus), Filter(records, t.Path(focus)))
}

func storyOf(name string, matched []record.Record) Story {
	s := Story{Name: name, Total: len(matched), CommonHabitat: NoData, FrequentWeather: NoData}
	if c, ok := GroupBy(matched, record.KeyHabitat).MostCommon(); ok {
		s.CommonHabitat = c.Category
	}
	if c, ok := GroupBy(matched, record.KeyWeather).MostCommon(); ok {
		s.FrequentWeather = c.Category
	}
	return s
}

// Tracker keeps a view current as a navigator's focus changes.
type Tracker struct {
	tree    *hierarchy.Tree
	records []record.Record
	keys    []record.Key
	view    View
	onFocus func(View)
}

// NewTracker computes the view of focus and returns a tracker for it.
// onFocus, when non-nil, is called with every recomputed view.
func NewTracker(t *hierarchy.Tree, records []record.Record, focus hierarchy.NodeID, onFocus func(View), keys ...record.Key) *Tracker {
	tr := &Tracker{tree: t, records: records, keys: keys, onFocus: onFocus}
	tr.view = Compute(t, focus, records, keys...)
	return tr
}

// Refocus recomputes the view for focus.
func (tr *Tracker) Refocus(focus hierarchy.NodeID) View {
	tr.view = Compute(tr.tree, focus, tr.records, tr.keys...)
	if tr.onFocus != nil {
		tr.onFocus(tr.view)
	}
	return tr.view
}

// View returns the latest view.
func (tr *Tracker) View() View { return tr.view }
