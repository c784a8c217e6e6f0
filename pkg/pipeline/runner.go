package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Records = len(ds.Records)
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded records",
		"source", ds.Source,
		"records", len(ds.Records),
		"incomplete", ds.Stats.Incomplete,
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	lay, layoutHit, err := r.LayoutWithCacheInfo(ctx, ds, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = lay
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Included = lay.Tree.Included
	result.Stats.Excluded = lay.Tree.Excluded
	result.Stats.NodeCount = lay.Tree.Len()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"nodes", lay.Tree.Len(),
		"excluded", lay.Tree.Excluded,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// The focus is checked here even when every artifact is cached, so
	// an unknown path fails the same way on every run.
	nav, err := Navigate(lay, opts.Focus, opts.Zoom)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	result.Frame = nav.Snapshot()

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, lay, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"view", opts.View,
		"focus", FocusString(opts.Focus),
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads records with caching and returns cache hit info.
//
// CSV datasets are cached under the hash of the file's bytes, so an edited
// file is re-parsed. MongoDB collections are always read live.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (ds *Dataset, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}

	start := time.Now()
	source := opts.Source()
	observability.Pipeline().OnLoadStart(ctx, source)
	defer func() {
		n := 0
		if ds != nil {
			n = len(ds.Records)
		}
		observability.Pipeline().OnLoadComplete(ctx, source, n, time.Since(start), err)
	}()

	if opts.Mongo != nil {
		ds, err = LoadMongo(ctx, *opts.Mongo)
		if err != nil {
			return nil, false, err
		}
		data, err := encodeDataset(ds)
		if err != nil {
			return nil, false, err
		}
		ds.Hash = cache.Hash(data)
		return ds, false, nil
	}

	raw, err := readSource(opts.Input)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.DatasetKey(cache.Hash(raw), opts.DatasetKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, cacheKey); err == nil && ok {
			if cached, err := decodeDataset(data); err == nil {
				cached.Hash = cache.Hash(data)
				return cached, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached dataset", "key", cacheKey)
		}
	}

	ds, err = LoadCSV(raw, opts.Input, opts.Columns)
	if err != nil {
		return nil, false, err
	}
	data, err := encodeDataset(ds)
	if err != nil {
		return nil, false, err
	}
	ds.Hash = cache.Hash(data)
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset); err != nil {
		opts.Logger.Warn("cache write failed", "stage", "load", "err", err)
	}
	return ds, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*Dataset, error) {
	ds, _, err := r.LoadWithCacheInfo(ctx, opts)
	return ds, err
}

// LayoutWithCacheInfo builds and partitions the hierarchy with caching and
// returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, ds *Dataset, opts Options) (lay *Layout, hit bool, err error) {
	r.applyLogger(&opts)
	opts.SetLayoutDefaults()

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(ds.Records))
	defer func() {
		n := 0
		if lay != nil {
			n = lay.Tree.Len()
		}
		observability.Pipeline().OnLayoutComplete(ctx, n, time.Since(start), err)
	}()

	cacheKey := r.Keyer.LayoutKey(ds.Hash, opts.LayoutKeyOpts())

	// Try cache first
	if data, ok, err := r.Cache.Get(ctx, cacheKey); err == nil && ok {
		if cached, err := DecodeLayout(data); err == nil {
			cached.Hash = cache.Hash(data)
			return cached, true, nil
		}
		opts.Logger.Debug("discarding unreadable cached layout", "key", cacheKey)
	}

	lay, err = GenerateLayout(ds.Records, opts)
	if err != nil {
		return nil, false, err
	}
	data, err := encodeLayout(lay)
	if err != nil {
		return nil, false, err
	}
	lay.Hash = cache.Hash(data)
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
		opts.Logger.Warn("cache write failed", "stage", "layout", "err", err)
	}
	return lay, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, ds *Dataset, opts Options) (*Layout, error) {
	lay, _, err := r.LayoutWithCacheInfo(ctx, ds, opts)
	return lay, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, lay *Layout, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	if lay.Hash == "" {
		data, err := encodeLayout(lay)
		if err != nil {
			return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
		}
		lay.Hash = cache.Hash(data)
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	// Try to get all formats from cache
	allCached := true
	artifacts = make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(lay.Hash, opts.ArtifactKeyOpts(format))
		if data, ok, err := r.Cache.Get(ctx, cacheKey); err == nil && ok {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	rendered, err := RenderFromLayout(ctx, lay, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(lay.Hash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, lay *Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, lay, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
