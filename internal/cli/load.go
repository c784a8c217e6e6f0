package cli

import (
	"context"
	"fmt"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
)

// loaded is the output of the first two pipeline stages.
type loaded struct {
	runner    *pipeline.Runner
	dataset   *pipeline.Dataset
	layout    *pipeline.Layout
	loadHit   bool
	layoutHit bool
}

// Close releases the runner's cache.
func (l *loaded) Close() error { return l.runner.Close() }

// load reads the records and computes the layout, behind a spinner.
// The caller closes the result.
func (c *CLI) load(ctx context.Context, opts pipeline.Options, noCache bool) (*loaded, error) {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	spin := newSpinner(ctx, "Loading "+opts.Source()+"...")
	spin.Start()

	ds, loadHit, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		spin.StopWithError("Load failed")
		runner.Close()
		return nil, err
	}
	lay, layoutHit, err := runner.LayoutWithCacheInfo(ctx, ds, opts)
	spin.Stop()
	if err != nil {
		printError("Layout failed")
		runner.Close()
		return nil, err
	}
	if ctx.Err() != nil {
		runner.Close()
		return nil, ctx.Err()
	}

	if ds.Stats.Incomplete > 0 || ds.Stats.BadNumbers > 0 {
		logger.Debug("skipped values", "incomplete", ds.Stats.Incomplete, "bad_numbers", ds.Stats.BadNumbers)
	}
	prog.done(fmt.Sprintf("Grouped %d records into %d nodes", lay.Tree.Included, lay.Tree.Len()))

	return &loaded{
		runner:    runner,
		dataset:   ds,
		layout:    lay,
		loadHit:   loadHit,
		layoutHit: layoutHit,
	}, nil
}
