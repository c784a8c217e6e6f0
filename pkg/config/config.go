// Package config loads the migrationburst tuning file.
//
// The file is TOML. Every key is optional; command-line flags override
// whatever the file sets. Unknown keys are an error so that typos do not
// silently fall back to defaults.
//
//	[data]
//	csv = "bird_migration_data.csv"
//
//	[data.columns]
//	continent = "Region"
//
//	[layout]
//	pad_angle = 0.005
//	sort_by_value = true
//
//	[zoom]
//	duration = "750ms"
//	label_min_area = 0.03
//
//	[render]
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/heatmap"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

const (
	appName  = "migrationburst"
	fileName = "config.toml"
)

// Config is the decoded tuning file.
type Config struct {
	Data    Data         `toml:"data"`
	Layout  Layout       `toml:"layout"`
	Zoom    Zoom         `toml:"zoom"`
	Render  Render       `toml:"render"`
	Cache   cache.Config `toml:"cache"`
	Heatmap Heatmap      `toml:"heatmap"`
}

// Data locates the migration records.
type Data struct {
	CSV     string         `toml:"csv"`
	Mongo   Mongo          `toml:"mongo"`
	Columns record.Columns `toml:"columns"`
}

// Mongo is a MongoDB record source. It is used when URI is set.
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Layout tunes the partition.
type Layout struct {
	RootName    string  `toml:"root_name"`
	PadAngle    float64 `toml:"pad_angle"`
	SortByValue bool    `toml:"sort_by_value"`
}

// Zoom tunes navigation and visibility.
type Zoom struct {
	Duration        Duration `toml:"duration"`
	SlowFactor      int      `toml:"slow_factor"`
	MinVisibleDepth float64  `toml:"min_visible_depth"`
	MaxVisibleDepth float64  `toml:"max_visible_depth"`
	LabelMinArea    float64  `toml:"label_min_area"`
}

// Render tunes chart output.
type Render struct {
	View     string   `toml:"view"`
	Formats  []string `toml:"formats"`
	Size     float64  `toml:"size"`
	Scale    float64  `toml:"scale"`
	NoLabels bool     `toml:"no_labels"`
	Tooltips bool     `toml:"tooltips"`
	Detailed bool     `toml:"detailed"`
}

// Heatmap sets the default heatmap axes and binning.
type Heatmap struct {
	X       string  `toml:"x"`
	Y       string  `toml:"y"`
	BinSize float64 `toml:"bin_size"`
}

// Duration is a time.Duration written as a Go duration string ("750ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout: Layout{RootName: pipeline.DefaultRootName, PadAngle: pipeline.DefaultPadAngle},
		Zoom: Zoom{
			Duration:        Duration{zoom.DefaultDuration},
			SlowFactor:      zoom.DefaultSlowFactor,
			MinVisibleDepth: zoom.DefaultMinVisibleDepth,
			MaxVisibleDepth: zoom.DefaultMaxVisibleDepth,
			LabelMinArea:    zoom.DefaultLabelMinArea,
		},
		Render: Render{
			View:    pipeline.DefaultView,
			Formats: []string{pipeline.FormatSVG},
			Size:    pipeline.DefaultSize,
			Scale:   pipeline.DefaultScale,
		},
		Cache:   cache.Config{Backend: cache.BackendFile},
		Heatmap: Heatmap{X: string(record.AxisTemperature), Y: string(record.AxisHumidity), BinSize: heatmap.DefaultBinSize},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/migrationburst/config.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path over the defaults. An empty path loads the
// default location, where a missing file is not an error; a missing file
// named explicitly is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return Config{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config %s", path)
			}
			return Default(), nil
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks values that decoding alone cannot.
func (c Config) Validate() error {
	if c.Data.CSV != "" && c.Data.Mongo.URI != "" {
		return errors.New("data: set either csv or mongo.uri, not both")
	}
	if c.Data.Mongo.URI != "" {
		if err := apperr.ValidateURI(c.Data.Mongo.URI, "mongodb", "mongodb+srv"); err != nil {
			return fmt.Errorf("data.mongo: %w", err)
		}
	}
	if c.Render.View != "" {
		if err := pipeline.ValidateView(c.Render.View); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if c.Zoom.Duration.Duration < 0 {
		return errors.New("zoom: duration must not be negative")
	}
	if c.Zoom.MinVisibleDepth > c.Zoom.MaxVisibleDepth && c.Zoom.MaxVisibleDepth > 0 {
		return errors.New("zoom: min_visible_depth exceeds max_visible_depth")
	}
	for _, a := range []string{c.Heatmap.X, c.Heatmap.Y} {
		if a == "" {
			continue
		}
		if _, ok := record.ParseAxis(a); !ok {
			return fmt.Errorf("heatmap: unknown axis %q", a)
		}
	}
	return nil
}

// MongoSource returns the configured MongoDB source, or nil.
func (c Config) MongoSource() *record.MongoSource {
	if c.Data.Mongo.URI == "" {
		return nil
	}
	return &record.MongoSource{
		URI:        c.Data.Mongo.URI,
		Database:   c.Data.Mongo.Database,
		Collection: c.Data.Mongo.Collection,
	}
}

// ZoomOptions converts the zoom section.
func (c Config) ZoomOptions() zoom.Options {
	return zoom.Options{
		Duration:        c.Zoom.Duration.Duration,
		SlowFactor:      c.Zoom.SlowFactor,
		MinVisibleDepth: c.Zoom.MinVisibleDepth,
		MaxVisibleDepth: c.Zoom.MaxVisibleDepth,
		LabelMinArea:    c.Zoom.LabelMinArea,
	}
}

// PipelineOptions converts the file into pipeline options. Commands apply
// their flags on top.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Input:       c.Data.CSV,
		Mongo:       c.MongoSource(),
		Columns:     c.Data.Columns,
		RootName:    c.Layout.RootName,
		PadAngle:    c.Layout.PadAngle,
		SortByValue: c.Layout.SortByValue,
		Zoom:        c.ZoomOptions(),
		View:        c.Render.View,
		Formats:     append([]string(nil), c.Render.Formats...),
		Size:        c.Render.Size,
		Scale:       c.Render.Scale,
		NoLabels:    c.Render.NoLabels,
		Tooltips:    c.Render.Tooltips,
		Detailed:    c.Render.Detailed,
	}
}

// HeatmapOptions converts the heatmap section. Unknown axes, already
// rejected by Validate, fall back to the heatmap defaults.
func (c Config) HeatmapOptions() heatmap.Options {
	x, _ := record.ParseAxis(c.Heatmap.X)
	y, _ := record.ParseAxis(c.Heatmap.Y)
	opts := heatmap.Options{X: x, Y: y, BinSize: c.Heatmap.BinSize}
	opts.SetDefaults()
	return opts
}

// Write encodes c as TOML to path, creating parent directories.
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
