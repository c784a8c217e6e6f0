package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

func sampleTree() *hierarchy.Tree {
	return hierarchy.Build([]record.Record{
		{Reason: "Food", Species: "Stork", Continent: "EU"},
		{Reason: "Food", Species: "Stork", Continent: "EU"},
		{Reason: "Breeding", Species: "Stork", Continent: "AF"},
		{Reason: "Breeding", Species: "Crane", Continent: "AS"},
	})
}

func TestToDOT_Basic(t *testing.T) {
	tree := sampleTree()
	dot := ToDOT(tree, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if got := strings.Count(dot, "label="); got != tree.Len() {
		t.Errorf("ToDOT() declared %d nodes, want %d", got, tree.Len())
	}
	if got := strings.Count(dot, "->"); got != tree.Len()-1 {
		t.Errorf("ToDOT() drew %d edges, want %d", got, tree.Len()-1)
	}
	// Stork appears under two reasons and must not be merged.
	if got := strings.Count(dot, `label="Stork"`); got != 2 {
		t.Errorf("Stork nodes = %d, want 2", got)
	}
	if !strings.Contains(dot, "n0 -> n1;") {
		t.Error("ToDOT() output missing root edge")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Detailed: true})

	if !strings.Contains(dot, `count: 4`) {
		t.Error("detailed output missing root count")
	}
	if !strings.Contains(dot, `share: 50.0%`) {
		t.Error("detailed output missing share of parent")
	}
}

func TestToDOT_MaxDepth(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{MaxDepth: 1})
	if got := strings.Count(dot, "label="); got != 3 {
		t.Errorf("depth-limited nodes = %d, want 3", got)
	}
	if strings.Contains(dot, "Stork") {
		t.Error("species should be cut at depth 1")
	}
}

func TestToDOT_Colors(t *testing.T) {
	tree := sampleTree()
	food, _ := tree.Find("Food")
	dot := ToDOT(tree, Options{Colors: map[hierarchy.NodeID]string{food: "#ff0000"}})

	// Food, its species and its continent.
	if got := strings.Count(dot, `fillcolor="#ff0000"`); got != 3 {
		t.Errorf("coloured nodes = %d, want 3", got)
	}
}

func TestToDOT_ZeroValue(t *testing.T) {
	b := hierarchy.NewBuilder("root")
	b.AddCount(2, "Food", "Stork", "EU")
	b.AddCount(0, "Food", "Crane", "AS")
	dot := ToDOT(b.Tree(), Options{})
	if got := strings.Count(dot, "dashed"); got != 2 {
		t.Errorf("dashed nodes = %d, want 2", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := string(normalizeViewBox([]byte("<svg/>"))); got != "<svg/>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTree(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "Crane") {
		t.Error("rendered SVG missing a node label")
	}
}
