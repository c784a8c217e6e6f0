package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[data]
csv = "birds.csv"

[data.columns]
continent = "Continent"

[layout]
pad_angle = 0.01
sort_by_value = true

[zoom]
duration = "1.5s"
label_min_area = 0.05

[render]
formats = ["svg", "json"]
tooltips = true

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/0"

[heatmap]
x = "pressure"
bin_size = 10.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Data.CSV != "birds.csv" || cfg.Data.Columns.Continent != "Continent" {
		t.Errorf("data = %+v", cfg.Data)
	}
	if cfg.Zoom.Duration.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", cfg.Zoom.Duration)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Zoom.SlowFactor != zoom.DefaultSlowFactor || cfg.Render.Size != pipeline.DefaultSize {
		t.Errorf("defaults lost: slow=%d size=%v", cfg.Zoom.SlowFactor, cfg.Render.Size)
	}
	if cfg.Cache.Backend != cache.BackendRedis {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}

	opts := cfg.PipelineOptions()
	if opts.Input != "birds.csv" || opts.Mongo != nil || !opts.SortByValue || opts.PadAngle != 0.01 {
		t.Errorf("pipeline options = %+v", opts)
	}
	if opts.Zoom.LabelMinArea != 0.05 || opts.Zoom.Duration != 1500*time.Millisecond {
		t.Errorf("zoom options = %+v", opts.Zoom)
	}

	hm := cfg.HeatmapOptions()
	if hm.X != record.AxisPressure || hm.Y != record.AxisHumidity || hm.BinSize != 10 {
		t.Errorf("heatmap options = %+v", hm)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code apperr.Code
	}{
		{"unknown key", "[layout]\npad_angel = 0.01\n", apperr.ErrCodeInvalidConfig},
		{"syntax", "[layout\n", apperr.ErrCodeInvalidConfig},
		{"bad duration", "[zoom]\nduration = \"soon\"\n", apperr.ErrCodeInvalidConfig},
		{"bad format", "[render]\nformats = [\"gif\"]\n", apperr.ErrCodeInvalidConfig},
		{"bad axis", "[heatmap]\nx = \"altitude\"\n", apperr.ErrCodeInvalidConfig},
		{"two sources", "[data]\ncsv = \"a.csv\"\n[data.mongo]\nuri = \"mongodb://localhost\"\n", apperr.ErrCodeInvalidConfig},
		{"bad mongo uri", "[data.mongo]\nuri = \"postgres://db\"\n", apperr.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); !apperr.Is(err, tt.code) {
				t.Errorf("Load = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(missing); !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("explicit missing file = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("default location without a file: %v", err)
	}
	if cfg.Zoom.Duration.Duration != zoom.DefaultDuration {
		t.Errorf("defaults not applied: %+v", cfg.Zoom)
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "migrationburst", "config.toml"); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Data.Mongo = Mongo{URI: "mongodb://localhost:27017", Database: "birds", Collection: "migrations"}
	cfg.Zoom.Duration = Duration{2 * time.Second}

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Zoom.Duration.Duration != 2*time.Second {
		t.Errorf("duration = %v", got.Zoom.Duration)
	}
	src := got.MongoSource()
	if src == nil || src.Database != "birds" || src.Collection != "migrations" {
		t.Errorf("mongo source = %+v", src)
	}
}
