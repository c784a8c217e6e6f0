package partition

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
)

// Document is the serialization format of a static layout, used by the
// layout command and as the cached layout artifact.
type Document struct {
	Root     string    `json:"root"`
	Depth    int       `json:"depth"`
	PadAngle float64   `json:"pad_angle"`
	Included int       `json:"included"`
	Excluded int       `json:"excluded,omitempty"`
	Nodes    []NodeDoc `json:"nodes"`
}

// NodeDoc is one positioned node. Nodes appear in pre-order.
type NodeDoc struct {
	ID     int      `json:"id"`
	Parent int      `json:"parent"`
	Name   string   `json:"name"`
	Path   []string `json:"path,omitempty"`
	Value  int      `json:"value"`
	Depth  int      `json:"depth"`
	Arc    Arc      `json:"arc"`
	Padded Arc      `json:"padded"`
}

// Export builds the serialization document for l, which must have been
// computed from t.
func Export(t *hierarchy.Tree, l *Layout) Document {
	doc := Document{
		Root:     t.Name(hierarchy.Root),
		Depth:    l.Depth(),
		PadAngle: l.PadAngle(),
		Included: t.Included,
		Excluded: t.Excluded,
		Nodes:    make([]NodeDoc, 0, t.Len()),
	}
	var visit func(hierarchy.NodeID)
	visit = func(id hierarchy.NodeID) {
		doc.Nodes = append(doc.Nodes, NodeDoc{
			ID:     int(id),
			Parent: int(t.Parent(id)),
			Name:   t.Name(id),
			Path:   t.Path(id),
			Value:  t.Value(id),
			Depth:  t.Depth(id),
			Arc:    l.Arc(id),
			Padded: l.Padded(id),
		})
		for _, c := range l.Children(id) {
			visit(c)
		}
	}
	visit(hierarchy.Root)
	return doc
}

// WriteJSON writes the layout document as indented JSON.
func WriteJSON(w io.Writer, t *hierarchy.Tree, l *Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(t, l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteJSONFile writes the layout document to path.
// The file is created with 0644 permissions.
func WriteJSONFile(path string, t *hierarchy.Tree, l *Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, t, l)
}

// ReadDocument decodes a layout document.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// Import rebuilds a tree and its layout from a document written by
// [Export]. Node IDs of the returned tree follow the document's pre-order,
// so they may differ from the IDs recorded in the document; node paths and
// arcs are preserved.
func Import(doc Document) (*hierarchy.Tree, *Layout, error) {
	if len(doc.Nodes) == 0 || doc.Nodes[0].Parent != int(hierarchy.NoParent) {
		return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat, "layout document has no root node")
	}

	hasChild := make(map[int]bool, len(doc.Nodes))
	for _, n := range doc.Nodes[1:] {
		hasChild[n.Parent] = true
	}
	b := hierarchy.NewBuilder(doc.Root)
	for _, n := range doc.Nodes[1:] {
		if !hasChild[n.ID] {
			b.AddCount(n.Value, n.Path...)
		}
	}
	t := b.Tree()
	t.Excluded = doc.Excluded

	if t.Len() != len(doc.Nodes) {
		return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat,
			"layout document has %d nodes, rebuilt tree has %d", len(doc.Nodes), t.Len())
	}

	l := &Layout{
		arcs:     make([]Arc, t.Len()),
		order:    make([][]hierarchy.NodeID, t.Len()),
		padAngle: doc.PadAngle,
		depth:    t.Height(),
	}
	byDocID := make(map[int]hierarchy.NodeID, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.Depth != len(n.Path) {
			return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat,
				"node %q has depth %d but a path of %d names", n.Name, n.Depth, len(n.Path))
		}
		if (i == 0) != (len(n.Path) == 0) {
			return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat, "only the first node may have an empty path")
		}
		if _, dup := byDocID[n.ID]; dup {
			return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat, "node id %d appears twice", n.ID)
		}
		var parent hierarchy.NodeID
		if i > 0 {
			p, seen := byDocID[n.Parent]
			if !seen {
				return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat,
					"node %q appears before its parent %d", n.Name, n.Parent)
			}
			if !slices.Equal(t.Path(p), n.Path[:len(n.Path)-1]) {
				return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat,
					"node %q is not a child of %q", strings.Join(n.Path, " / "), t.Name(p))
			}
			parent = p
		}
		id, ok := t.Find(n.Path...)
		if !ok {
			return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat, "node %q is not reachable by its path", n.Name)
		}
		if t.Value(id) != n.Value {
			return nil, nil, apperr.New(apperr.ErrCodeInvalidFormat,
				"node %q has value %d but its leaves sum to %d", n.Name, n.Value, t.Value(id))
		}
		byDocID[n.ID] = id
		l.arcs[id] = n.Arc
		if i > 0 {
			l.order[parent] = append(l.order[parent], id)
		}
	}
	return t, l, nil
}
