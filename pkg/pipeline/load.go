package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
)

// Dataset is a loaded set of migration records.
type Dataset struct {
	Records []record.Record
	Stats   record.LoadStats
	Source  string

	// Hash identifies the records' content. Layouts are cached under it.
	Hash string
}

// datasetDoc is the cached form of a Dataset. It is stored as BSON rather
// than JSON because unparsable readings are NaN, which JSON cannot carry.
type datasetDoc struct {
	Source  string           `bson:"source"`
	Stats   record.LoadStats `bson:"stats"`
	Records []record.Record  `bson:"records"`
}

func encodeDataset(ds *Dataset) ([]byte, error) {
	data, err := bson.Marshal(datasetDoc{Source: ds.Source, Stats: ds.Stats, Records: ds.Records})
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return data, nil
}

func decodeDataset(data []byte) (*Dataset, error) {
	var doc datasetDoc
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &Dataset{Records: doc.Records, Stats: doc.Stats, Source: doc.Source}, nil
}

// readSource returns the raw bytes of a CSV input.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// LoadCSV parses CSV bytes into a dataset.
func LoadCSV(data []byte, source string, cols record.Columns) (*Dataset, error) {
	recs, stats, err := record.ReadCSV(bytes.NewReader(data), cols)
	if err != nil {
		return nil, err
	}
	return &Dataset{Records: recs, Stats: stats, Source: source}, nil
}

// LoadMongo reads every document of a MongoDB collection into a dataset.
func LoadMongo(ctx context.Context, src record.MongoSource) (*Dataset, error) {
	recs, stats, err := record.LoadMongo(ctx, src)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeNetwork, err, "load %s.%s", src.Database, src.Collection)
	}
	return &Dataset{Records: recs, Stats: stats, Source: fmt.Sprintf("mongodb:%s.%s", src.Database, src.Collection)}, nil
}
