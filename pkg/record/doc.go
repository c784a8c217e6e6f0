// Package record defines the bird-migration observation and its loaders.
//
// A [Record] carries the three hierarchy keys (reason, species, continent),
// two further categorical fields used by linked views (habitat, weather
// condition), the migration outcome, and four numeric environment readings.
//
// # Loading
//
// [ReadCSV] and [ReadCSVFile] decode the dataset's CSV export; [Columns]
// overrides header names. [LoadMongo] reads the same shape from a MongoDB
// collection. Loaders never drop rows: records missing a hierarchy key are
// returned and excluded later by the hierarchy builder. Categorical cells
// are kept verbatim, so " Food" and "Food" are different reasons; numeric
// cells are trimmed before parsing.
//
// # Field access
//
// Categorical fields are addressed by [Key] through [Record.Category] and
// numeric readings by [Axis] through [Record.Reading], so aggregations can
// be parameterized by a user-supplied field name.
package record
