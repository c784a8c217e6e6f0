// Package cli implements the migrationburst command-line interface.
//
// The commands load bird migration records from a CSV file or a MongoDB
// collection, group them into the reason → species → continent hierarchy
// and present it as a zoomable sunburst. The CLI is built using cobra and
// logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - tree: Print the counted hierarchy
//   - layout: Write the sunburst partition as JSON
//   - render: Write the chart as SVG, PNG, PDF or JSON
//   - zoom: Inspect the arcs drawn for a focus
//   - linked: Summarise the habitats and weather behind a focus
//   - heatmap, radar: Compare weather readings of successful migrations
//   - explore: Navigate the sunburst interactively
//   - cache: Manage the local cache
//
// # Configuration
//
// Flags override the TOML file given by --config, which overrides the
// built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a charm logger on w that stamps each line with the
// wall-clock time to the hundredth of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

// progress logs how long a pipeline stage took, for example
// "Grouped 1200 records into 96 nodes (41ms)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Infof("%s (%s)", msg, elapsed)
}

type loggerCtxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
