package record

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource locates a collection of migration observations stored with
// the same field names as the CSV dataset.
type MongoSource struct {
	URI        string
	Database   string
	Collection string
}

// mongoDoc mirrors one dataset row. Pointer fields distinguish a missing
// reading from a zero reading.
type mongoDoc struct {
	Reason           string   `bson:"Migration_Reason"`
	Species          string   `bson:"Species"`
	Region           string   `bson:"Region"`
	Habitat          string   `bson:"Habitat"`
	WeatherCondition string   `bson:"Weather_Condition"`
	MigrationSuccess string   `bson:"Migration_Success"`
	TemperatureC     *float64 `bson:"Temperature_C"`
	Humidity         *float64 `bson:"Humidity_%"`
	Pressure         *float64 `bson:"Pressure_hPa"`
	WindSpeed        *float64 `bson:"Wind_Speed_kmph"`
	StartMonth       int      `bson:"Migration_Start_Month"`
	EndMonth         int      `bson:"Migration_End_Month"`
}

func (d mongoDoc) record() Record {
	val := func(p *float64) float64 {
		if p == nil {
			return math.NaN()
		}
		return *p
	}
	return Record{
		Reason:           d.Reason,
		Species:          d.Species,
		Continent:        d.Region,
		Habitat:          d.Habitat,
		WeatherCondition: d.WeatherCondition,
		MigrationStatus:  d.MigrationSuccess,
		Temperature:      val(d.TemperatureC) + kelvinOffset,
		Humidity:         val(d.Humidity),
		Pressure:         val(d.Pressure),
		WindSpeed:        val(d.WindSpeed),
		StartMonth:       d.StartMonth,
		EndMonth:         d.EndMonth,
	}
}

// LoadMongo reads every document of the source collection.
// The connection is opened and closed within the call.
func LoadMongo(ctx context.Context, src MongoSource) ([]Record, LoadStats, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(src.URI))
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("connect mongo: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	coll := client.Database(src.Database).Collection(src.Collection)
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("find %s.%s: %w", src.Database, src.Collection, err)
	}
	defer cur.Close(ctx)

	var (
		out   []Record
		stats LoadStats
	)
	for cur.Next(ctx) {
		var d mongoDoc
		if err := cur.Decode(&d); err != nil {
			return nil, stats, fmt.Errorf("decode document %d: %w", stats.Rows+1, err)
		}
		stats.Rows++
		rec := d.record()
		if !rec.HasGroupingKeys() {
			stats.Incomplete++
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, stats, fmt.Errorf("iterate %s.%s: %w", src.Database, src.Collection, err)
	}
	return out, stats, nil
}
