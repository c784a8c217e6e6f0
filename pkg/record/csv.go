package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
)

// Columns maps record fields to CSV header names.
// The zero value of a field means "use the default column".
type Columns struct {
	Reason           string `toml:"reason"`
	Species          string `toml:"species"`
	Continent        string `toml:"continent"`
	Habitat          string `toml:"habitat"`
	WeatherCondition string `toml:"weather_condition"`
	MigrationStatus  string `toml:"migration_status"`
	Temperature      string `toml:"temperature"`
	Humidity         string `toml:"humidity"`
	Pressure         string `toml:"pressure"`
	WindSpeed        string `toml:"wind_speed"`
	StartMonth       string `toml:"start_month"`
	EndMonth         string `toml:"end_month"`
}

// DefaultColumns are the header names of the bird migration dataset.
var DefaultColumns = Columns{
	Reason:           "Migration_Reason",
	Species:          "Species",
	Continent:        "Region",
	Habitat:          "Habitat",
	WeatherCondition: "Weather_Condition",
	MigrationStatus:  "Migration_Success",
	Temperature:      "Temperature_C",
	Humidity:         "Humidity_%",
	Pressure:         "Pressure_hPa",
	WindSpeed:        "Wind_Speed_kmph",
	StartMonth:       "Migration_Start_Month",
	EndMonth:         "Migration_End_Month",
}

// WithDefaults fills empty column names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	def := DefaultColumns
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Columns{
		Reason:           pick(c.Reason, def.Reason),
		Species:          pick(c.Species, def.Species),
		Continent:        pick(c.Continent, def.Continent),
		Habitat:          pick(c.Habitat, def.Habitat),
		WeatherCondition: pick(c.WeatherCondition, def.WeatherCondition),
		MigrationStatus:  pick(c.MigrationStatus, def.MigrationStatus),
		Temperature:      pick(c.Temperature, def.Temperature),
		Humidity:         pick(c.Humidity, def.Humidity),
		Pressure:         pick(c.Pressure, def.Pressure),
		WindSpeed:        pick(c.WindSpeed, def.WindSpeed),
		StartMonth:       pick(c.StartMonth, def.StartMonth),
		EndMonth:         pick(c.EndMonth, def.EndMonth),
	}
}

// LoadStats summarizes a load.
type LoadStats struct {
	Rows       int // data rows read
	Incomplete int // rows missing at least one hierarchy key
	BadNumbers int // numeric cells that failed to parse
}

// ReadCSVFile reads records from a CSV file. See ReadCSV.
func ReadCSVFile(path string, cols Columns) ([]Record, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, LoadStats{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, LoadStats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, cols)
}

// ReadCSV decodes a header-first CSV stream into records.
//
// The reason, species and continent columns must be present in the header;
// every other column is optional. Rows with empty hierarchy keys are kept
// (the hierarchy builder excludes them) and counted in LoadStats.Incomplete.
// Temperatures are read in °C and stored in Kelvin.
func ReadCSV(r io.Reader, cols Columns) ([]Record, LoadStats, error) {
	cols = cols.WithDefaults()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, LoadStats{}, apperr.New(apperr.ErrCodeInvalidFormat, "dataset is empty")
	}
	if err != nil {
		return nil, LoadStats{}, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "read header")
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, required := range []string{cols.Reason, cols.Species, cols.Continent} {
		if _, ok := idx[required]; !ok {
			return nil, LoadStats{}, apperr.New(apperr.ErrCodeInvalidFormat, "missing required column %q", required)
		}
	}

	var (
		out   []Record
		stats LoadStats
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "read row %d", stats.Rows+1)
		}
		stats.Rows++

		cell := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		num := func(name string) float64 {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell(name)), 64)
			if err != nil {
				stats.BadNumbers++
				return math.NaN()
			}
			return v
		}
		month := func(name string) int {
			v, err := strconv.Atoi(strings.TrimSpace(cell(name)))
			if err != nil {
				return 0
			}
			return v
		}

		rec := Record{
			Reason:           cell(cols.Reason),
			Species:          cell(cols.Species),
			Continent:        cell(cols.Continent),
			Habitat:          cell(cols.Habitat),
			WeatherCondition: cell(cols.WeatherCondition),
			MigrationStatus:  cell(cols.MigrationStatus),
			Temperature:      num(cols.Temperature) + kelvinOffset,
			Humidity:         num(cols.Humidity),
			Pressure:         num(cols.Pressure),
			WindSpeed:        num(cols.WindSpeed),
			StartMonth:       month(cols.StartMonth),
			EndMonth:         month(cols.EndMonth),
		}
		if !rec.HasGroupingKeys() {
			stats.Incomplete++
		}
		out = append(out, rec)
	}
	return out, stats, nil
}
