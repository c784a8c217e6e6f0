package pipeline

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/observability"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

const sampleCSV = `Species,Region,Habitat,Weather_Condition,Migration_Reason,Migration_Success,Temperature_C,Humidity_%
Stork,Europe,Wetland,Sunny,Feeding,Successful,21.5,60
Stork,Europe,Wetland,Rainy,Feeding,Failed,19,70
Stork,Africa,Grassland,Sunny,Feeding,Successful,30,40
Crane,Asia,Wetland,Windy,Breeding,Successful,n/a,55
Swallow,Europe,Urban,Sunny,,Successful,22,50
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migrations.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format should fail with INVALID_FORMAT, got %v", err)
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{"sunburst", false},
		{"tree", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateView(tt.view)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
		}
	}
}

func TestValidateForLoad(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperr.Code
	}{
		{"no source", Options{}, apperr.ErrCodeInvalidInput},
		{"both sources", Options{Input: "a.csv", Mongo: &record.MongoSource{}}, apperr.ErrCodeInvalidInput},
		{"bad mongo uri", Options{Mongo: &record.MongoSource{URI: "http://x", Database: "d", Collection: "c"}}, apperr.ErrCodeInvalidConfig},
		{"mongo without collection", Options{Mongo: &record.MongoSource{URI: "mongodb://localhost", Database: "d"}}, apperr.ErrCodeInvalidConfig},
		{"csv", Options{Input: "a.csv"}, ""},
		{"mongo", Options{Mongo: &record.MongoSource{URI: "mongodb+srv://cluster", Database: "d", Collection: "c"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLoad()
			if tt.code == "" {
				if err != nil {
					t.Errorf("ValidateForLoad() = %v", err)
				}
				return
			}
			if !apperr.Is(err, tt.code) {
				t.Errorf("ValidateForLoad() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Input: "a.csv"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.View != ViewSunburst || opts.Size != DefaultSize || opts.Scale != DefaultScale {
		t.Errorf("render defaults = %q/%v/%v", opts.View, opts.Size, opts.Scale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.RootName != hierarchy.DefaultRootName || opts.PadAngle != DefaultPadAngle {
		t.Errorf("layout defaults = %q/%v", opts.RootName, opts.PadAngle)
	}
	if opts.Zoom.Duration == 0 || opts.Logger == nil {
		t.Error("zoom and logger defaults not applied")
	}

	deep := Options{Input: "a.csv", Focus: []string{"a", "b", "c", "d"}}
	if err := deep.ValidateAndSetDefaults(); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("four-level focus = %v, want INVALID_INPUT", err)
	}
}

func TestArtifactKeyOptsDistinguishFocus(t *testing.T) {
	k := cache.NewDefaultKeyer()
	a := Options{Focus: []string{"Feeding"}}
	b := Options{Focus: []string{"Breeding"}}
	if k.ArtifactKey("h", a.ArtifactKeyOpts("svg")) == k.ArtifactKey("h", b.ArtifactKeyOpts("svg")) {
		t.Error("different focus paths should key different artifacts")
	}
}

func TestGenerateLayout(t *testing.T) {
	ds, err := LoadCSV([]byte(sampleCSV), "sample", record.Columns{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	lay, err := GenerateLayout(ds.Records, Options{RootName: "Birds"})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if lay.Tree.Name(hierarchy.Root) != "Birds" {
		t.Errorf("root name = %q", lay.Tree.Name(hierarchy.Root))
	}
	if lay.Tree.Included != 4 || lay.Tree.Excluded != 1 {
		t.Errorf("Included/Excluded = %d/%d, want 4/1", lay.Tree.Included, lay.Tree.Excluded)
	}
	if lay.Partition.PadAngle() != DefaultPadAngle {
		t.Errorf("PadAngle = %v", lay.Partition.PadAngle())
	}
}

func TestNavigate(t *testing.T) {
	ds, _ := LoadCSV([]byte(sampleCSV), "sample", record.Columns{})
	lay, _ := GenerateLayout(ds.Records, Options{})

	nav, err := Navigate(lay, []string{"Feeding", "Stork"}, zoomOpts())
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if _, running := nav.Running(); running {
		t.Error("navigation should be settled")
	}
	stork, _ := lay.Tree.Find("Feeding", "Stork")
	if nav.Focus().Node != stork {
		t.Errorf("focus = %v", nav.Focus().Path)
	}
	if a := nav.Current(stork); a.X0 != 0 || a.X1 != partition.FullCircle {
		t.Errorf("focus arc = %+v, want full circle", a)
	}

	tests := []struct {
		name string
		path []string
		code apperr.Code
	}{
		{"unknown", []string{"Nesting"}, apperr.ErrCodeNodeNotFound},
		{"leaf", []string{"Feeding", "Stork", "Europe"}, apperr.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Navigate(lay, tt.path, zoomOpts()); !apperr.Is(err, tt.code) {
				t.Errorf("Navigate(%v) = %v, want %s", tt.path, err, tt.code)
			}
		})
	}
}

func TestDatasetEncodingKeepsNaN(t *testing.T) {
	ds, _ := LoadCSV([]byte(sampleCSV), "sample", record.Columns{})
	data, err := encodeDataset(ds)
	if err != nil {
		t.Fatalf("encodeDataset: %v", err)
	}
	got, err := decodeDataset(data)
	if err != nil {
		t.Fatalf("decodeDataset: %v", err)
	}
	if len(got.Records) != len(ds.Records) || got.Source != "sample" || got.Stats != ds.Stats {
		t.Fatalf("decoded = %+v", got)
	}
	if !math.IsNaN(got.Records[3].Temperature) {
		t.Errorf("unparsable temperature = %v, want NaN", got.Records[3].Temperature)
	}
	g, w := got.Records[0], ds.Records[0]
	if g.Species != w.Species || g.Habitat != w.Habitat || g.Temperature != w.Temperature || g.Humidity != w.Humidity {
		t.Errorf("record 0 = %+v, want %+v", g, w)
	}
	if !math.IsNaN(g.Pressure) {
		t.Error("missing pressure column should decode as NaN")
	}
}

func TestDecodeLayoutRoundTrip(t *testing.T) {
	ds, _ := LoadCSV([]byte(sampleCSV), "sample", record.Columns{})
	lay, _ := GenerateLayout(ds.Records, Options{SortByValue: true})
	data, err := encodeLayout(lay)
	if err != nil {
		t.Fatalf("encodeLayout: %v", err)
	}
	got, err := DecodeLayout(data)
	if err != nil {
		t.Fatalf("DecodeLayout: %v", err)
	}
	if got.Tree.Len() != lay.Tree.Len() || got.Tree.Excluded != 1 {
		t.Errorf("decoded tree Len/Excluded = %d/%d", got.Tree.Len(), got.Tree.Excluded)
	}
	if _, err := DecodeLayout([]byte("{")); !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("DecodeLayout(garbage) = %v, want INVALID_FORMAT", err)
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	input := writeSample(t)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	opts := Options{Input: input, Focus: []string{"Feeding"}, Formats: []string{FormatJSON}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo != (CacheInfo{}) {
		t.Errorf("first run cache info = %+v, want all misses", first.CacheInfo)
	}
	if first.Stats.Records != 5 || first.Stats.Included != 4 || first.Stats.Excluded != 1 {
		t.Errorf("stats = %+v", first.Stats)
	}

	var out struct {
		FocusName string `json:"focus_name"`
		Arcs      []struct {
			Path []string `json:"path"`
		} `json:"arcs"`
	}
	if err := json.Unmarshal(first.Artifacts[FormatJSON], &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.FocusName != "Feeding" {
		t.Errorf("focus_name = %q", out.FocusName)
	}
	// Feeding → Stork, and Stork's two continents.
	if len(out.Arcs) != 3 {
		t.Errorf("visible arcs = %d, want 3", len(out.Arcs))
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute (cached): %v", err)
	}
	if second.CacheInfo != (CacheInfo{LoadHit: true, LayoutHit: true, RenderHit: true}) {
		t.Errorf("second run cache info = %+v, want all hits", second.CacheInfo)
	}
	if string(second.Artifacts[FormatJSON]) != string(first.Artifacts[FormatJSON]) {
		t.Error("cached artifact differs from rendered one")
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute (refresh): %v", err)
	}
	if third.CacheInfo.LoadHit || !third.CacheInfo.LayoutHit {
		t.Errorf("refresh cache info = %+v, want a reload with a cached layout", third.CacheInfo)
	}
}

func TestRunnerExecuteUnknownFocus(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{
		Input:   writeSample(t),
		Focus:   []string{"Nesting"},
		Formats: []string{FormatJSON},
	})
	if !apperr.Is(err, apperr.ErrCodeNodeNotFound) {
		t.Errorf("Execute = %v, want NODE_NOT_FOUND", err)
	}
}

func TestRunnerMissingInput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Load(context.Background(), Options{Input: filepath.Join(t.TempDir(), "missing.csv")})
	if !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("Load = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderTreeJSON(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Input:   writeSample(t),
		View:    ViewTree,
		Formats: []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	lay, err := DecodeLayout(res.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("tree JSON is not a layout document: %v", err)
	}
	if lay.Tree.Value(hierarchy.Root) != 4 {
		t.Errorf("root value = %d, want 4", lay.Tree.Value(hierarchy.Root))
	}
}

type recordingPipelineHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingPipelineHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingPipelineHooks) OnLoadComplete(_ context.Context, _ string, n int, _ time.Duration, err error) {
	if err == nil {
		h.add("load")
	}
}

func (h *recordingPipelineHooks) OnLayoutComplete(_ context.Context, _ int, _ time.Duration, err error) {
	if err == nil {
		h.add("layout")
	}
}

func (h *recordingPipelineHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	if err == nil {
		h.add("render")
	}
}

func TestRunnerEmitsHooks(t *testing.T) {
	hooks := &recordingPipelineHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{Input: writeSample(t), Formats: []string{FormatJSON}}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"load", "layout", "render"}
	if len(hooks.events) != len(want) {
		t.Fatalf("events = %v, want %v", hooks.events, want)
	}
	for i := range want {
		if hooks.events[i] != want[i] {
			t.Errorf("events = %v, want %v", hooks.events, want)
		}
	}
}

func zoomOpts() zoom.Options { return zoom.Options{} }
