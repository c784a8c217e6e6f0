// Package pkg provides the libraries behind migrationburst, a zoomable
// sunburst of bird migration records.
//
// # Overview
//
// Migrationburst groups migration records by reason, species and
// continent, partitions the resulting hierarchy into a sunburst and lets a
// user zoom into any ring while side views summarise the focus. The pkg
// directory is organized as:
//
//  1. [record] - Migration records and their CSV and MongoDB sources
//  2. [hierarchy] - The counted reason → species → continent tree
//  3. [partition] - Radial partition layout and its JSON document
//  4. [zoom] - Focus navigation, transitions and visibility rules
//  5. [linked] - Habitat and weather summaries of the focus
//  6. [heatmap], [radar] - Weather views of successful migrations
//  7. [render] - SVG, JSON and Graphviz output plus PDF/PNG conversion
//  8. [pipeline] - Orchestration (load → layout → render) with caching
//  9. [cache], [config], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	CSV file / MongoDB collection
//	         ↓
//	    [record] package (parse rows, Kelvin temperatures)
//	         ↓
//	    [hierarchy] package (group and count)
//	         ↓
//	    [partition] package (angles and rings)
//	         ↓
//	    [zoom] package (focus, transition frames)
//	         ↓
//	    SVG/PDF/PNG/JSON output, linked views
//
// # Quick Start
//
//	import (
//	    "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
//	    "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
//	    "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
//	    "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render/sunburst/sink"
//	    "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
//	)
//
//	records, _, _ := record.ReadCSVFile("bird_migration_data.csv", record.Columns{})
//
//	b := hierarchy.NewBuilder(hierarchy.DefaultRootName)
//	for _, r := range records {
//	    b.Add(r)
//	}
//	t := b.Tree()
//
//	l := partition.Compute(t, partition.Options{})
//	nav := zoom.New(t, l, zoom.Options{})
//	svg := sink.RenderSVG(t, nav.Snapshot())
//
// Or let [pipeline] do all of it, with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "birds.csv"})
//
// [record]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record
// [hierarchy]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy
// [partition]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition
// [zoom]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom
// [linked]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/linked
// [heatmap]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/heatmap
// [radar]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/radar
// [render]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache
// [config]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/config
// [errors]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors
// [observability]: https://pkg.go.dev/github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/observability
package pkg
