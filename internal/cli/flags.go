package cli

import (
	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/pipeline"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// dataFlags selects the records and how they are grouped. Flags left unset
// keep the value from the config file.
type dataFlags struct {
	mongoURI        string
	mongoDatabase   string
	mongoCollection string
	rootName        string
	padAngle        float64
	sortByValue     bool
	noCache         bool
	refresh         bool
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", "", "read records from MongoDB instead of a CSV file")
	cmd.Flags().StringVar(&f.mongoDatabase, "mongo-db", "", "MongoDB database")
	cmd.Flags().StringVar(&f.mongoCollection, "mongo-collection", "", "MongoDB collection")
	cmd.Flags().StringVar(&f.rootName, "root", pipeline.DefaultRootName, "name of the centre node")
	cmd.Flags().Float64Var(&f.padAngle, "pad-angle", pipeline.DefaultPadAngle, "gap between sibling arcs in radians (negative disables)")
	cmd.Flags().BoolVar(&f.sortByValue, "sort", false, "order siblings by descending count")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-read the CSV even when it is cached")
}

// zoomFlags picks the focus and the visibility thresholds.
type zoomFlags struct {
	focus        string
	maxDepth     float64
	labelMinArea float64
}

func (f *zoomFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.focus, "focus", "", "node to zoom into, as Reason/Species")
	cmd.Flags().Float64Var(&f.maxDepth, "max-depth", 0, "outermost visible ring relative to the focus")
	cmd.Flags().Float64Var(&f.labelMinArea, "label-min-area", 0, "smallest arc area that gets a label")
}

// pipelineOptions merges the config file, positional input and flags.
func (c *CLI) pipelineOptions(cmd *cobra.Command, args []string, df *dataFlags, zf *zoomFlags) pipeline.Options {
	opts := c.config.PipelineOptions()
	opts.Logger = c.Logger

	if len(args) > 0 {
		opts.Input = args[0]
		opts.Mongo = nil
	}
	if df != nil {
		if df.mongoURI != "" {
			src := record.MongoSource{URI: df.mongoURI}
			if opts.Mongo != nil {
				src.Database = opts.Mongo.Database
				src.Collection = opts.Mongo.Collection
			}
			opts.Mongo = &src
			opts.Input = ""
		}
		if opts.Mongo != nil {
			if df.mongoDatabase != "" {
				opts.Mongo.Database = df.mongoDatabase
			}
			if df.mongoCollection != "" {
				opts.Mongo.Collection = df.mongoCollection
			}
		}
		flags := cmd.Flags()
		if flags.Changed("root") {
			opts.RootName = df.rootName
		}
		if flags.Changed("pad-angle") {
			opts.PadAngle = df.padAngle
		}
		if flags.Changed("sort") {
			opts.SortByValue = df.sortByValue
		}
		opts.Refresh = df.refresh
	}
	if zf != nil {
		opts.Focus = parseFocus(zf.focus)
		if zf.maxDepth > 0 {
			opts.Zoom.MaxVisibleDepth = zf.maxDepth
		}
		if zf.labelMinArea > 0 {
			opts.Zoom.LabelMinArea = zf.labelMinArea
		}
	}
	return opts
}
