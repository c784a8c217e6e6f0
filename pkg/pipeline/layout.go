package pipeline

import (
	"bytes"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// Layout is a counted migration tree and its static sunburst partition.
type Layout struct {
	Tree      *hierarchy.Tree
	Partition *partition.Layout

	// Hash identifies the layout document. Artifacts are cached under it.
	Hash string
}

// Document returns the layout's serialization document.
func (l *Layout) Document() partition.Document {
	return partition.Export(l.Tree, l.Partition)
}

// GenerateLayout builds the hierarchy of records and partitions it.
func GenerateLayout(records []record.Record, opts Options) (*Layout, error) {
	opts.SetLayoutDefaults()

	b := hierarchy.NewBuilder(opts.RootName)
	for _, r := range records {
		b.Add(r)
	}
	t := b.Tree()
	if err := t.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "build hierarchy")
	}

	p := partition.Compute(t, partition.Options{PadAngle: opts.PadAngle, SortByValue: opts.SortByValue})
	return &Layout{Tree: t, Partition: p}, nil
}

// encodeLayout writes the layout document and records its hash.
func encodeLayout(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := partition.WriteJSON(&buf, l.Tree, l.Partition); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeLayout reads a layout document written by the layout command or
// the layout cache.
func DecodeLayout(data []byte) (*Layout, error) {
	doc, err := partition.ReadDocument(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "layout document")
	}
	t, p, err := partition.Import(doc)
	if err != nil {
		return nil, err
	}
	return &Layout{Tree: t, Partition: p}, nil
}

// Navigate returns a navigator for l focused on path, with the transition
// to the focus already settled. An empty path leaves the root in focus.
func Navigate(l *Layout, path []string, opts zoom.Options) (*zoom.Navigator, error) {
	nav := zoom.New(l.Tree, l.Partition, opts)
	if len(path) == 0 {
		return nav, nil
	}
	id, ok := l.Tree.Find(path...)
	if !ok {
		return nil, apperr.New(apperr.ErrCodeNodeNotFound, "no node at %s", FocusString(path))
	}
	if l.Tree.IsLeaf(id) {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "cannot zoom into %s: it has no children", FocusString(path))
	}
	if _, ok := nav.DrillIn(id); !ok {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "cannot zoom into %s: it has no migrations", FocusString(path))
	}
	nav.Settle()
	return nav, nil
}
