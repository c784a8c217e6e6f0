package sink

import (
	"encoding/json"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	hidden  bool
	palette Palette
}

// WithHidden includes arcs that are not visible in the frame. By default
// only visible arcs are exported.
func WithHidden() JSONOption { return func(r *jsonRenderer) { r.hidden = true } }

// WithJSONPalette records each arc's colour from p instead of the default
// rainbow.
func WithJSONPalette(p Palette) JSONOption { return func(r *jsonRenderer) { r.palette = p } }

type jsonOutput struct {
	Root      string    `json:"root"`
	Focus     []string  `json:"focus"`
	FocusName string    `json:"focus_name"`
	Progress  float64   `json:"progress"`
	Settled   bool      `json:"settled"`
	PadAngle  float64   `json:"pad_angle"`
	MaxDepth  float64   `json:"max_depth"`
	Arcs      []jsonArc `json:"arcs"`
}

type jsonArc struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Path         []string      `json:"path"`
	Value        int           `json:"value"`
	Color        string        `json:"color"`
	Arc          partition.Arc `json:"arc"`
	Padded       partition.Arc `json:"padded"`
	Visible      bool          `json:"visible"`
	LabelVisible bool          `json:"label_visible"`
	Label        *zoom.Label   `json:"label,omitempty"`
	Tooltip      string        `json:"tooltip"`
}

// RenderJSON exports one frame of the sunburst of t as a pretty-printed
// JSON document: the focus, and for every arc its current geometry,
// visibility, label placement and tooltip. Arcs appear in pre-order; the
// root is omitted like in the SVG.
func RenderJSON(t *hierarchy.Tree, f zoom.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.palette == nil {
		r.palette = RainbowPalette(t)
	}

	out := jsonOutput{
		Root:      t.Name(hierarchy.Root),
		Focus:     t.Path(f.Focus),
		FocusName: t.Name(f.Focus),
		Progress:  f.Progress,
		Settled:   f.Settled,
		PadAngle:  f.PadAngle,
		MaxDepth:  f.MaxDepth,
		Arcs:      []jsonArc{},
	}
	t.Walk(func(id hierarchy.NodeID) bool {
		fa := f.Arcs[id]
		if id == hierarchy.Root || (!fa.ArcVisible && !r.hidden) {
			return true
		}
		a := jsonArc{
			ID:           int(id),
			Name:         t.Name(id),
			Path:         t.Path(id),
			Value:        t.Value(id),
			Color:        r.palette.Color(t, id),
			Arc:          fa.Arc,
			Padded:       f.Padded(id),
			Visible:      fa.ArcVisible,
			LabelVisible: fa.LabelVisible,
			Tooltip:      zoom.Tooltip(t, id),
		}
		if fa.LabelVisible {
			l := zoom.LabelTransform(fa.Arc)
			a.Label = &l
		}
		out.Arcs = append(out.Arcs, a)
		return true
	})
	return json.MarshalIndent(out, "", "  ")
}
