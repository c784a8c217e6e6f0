package cache

// Keyer derives cache keys.
type Keyer interface {
	// DatasetKey keys parsed records by the hash of their source bytes.
	DatasetKey(sourceHash string, opts DatasetKeyOpts) string

	// LayoutKey keys a layout by the hash of its dataset.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered output by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DatasetKeyOpts are the loader settings that change parsed records.
type DatasetKeyOpts struct {
	Columns []string `json:"columns,omitempty"`
}

// LayoutKeyOpts are the settings that change a layout.
type LayoutKeyOpts struct {
	RootName    string  `json:"root_name,omitempty"`
	PadAngle    float64 `json:"pad_angle"`
	SortByValue bool    `json:"sort_by_value"`
}

// ArtifactKeyOpts are the settings that change a rendered output.
type ArtifactKeyOpts struct {
	Format       string   `json:"format"`
	View         string   `json:"view,omitempty"`  // sunburst or tree
	Focus        []string `json:"focus,omitempty"` // focus path of a zoomed render
	Size         float64  `json:"size,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	Labels       bool     `json:"labels"`
	Tooltips     bool     `json:"tooltips,omitempty"`
	Detailed     bool     `json:"detailed,omitempty"`
	MinDepth     float64  `json:"min_depth,omitempty"`
	MaxDepth     float64  `json:"max_depth,omitempty"`
	LabelMinArea float64  `json:"label_min_area,omitempty"`
}

// DefaultKeyer hashes the options of every key so that any change to them
// yields a new key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DatasetKey implements Keyer.
func (DefaultKeyer) DatasetKey(sourceHash string, opts DatasetKeyOpts) string {
	return hashKey(KeyTypeDataset, sourceHash, opts)
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey(KeyTypeLayout, datasetHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, layoutHash, opts)
}
