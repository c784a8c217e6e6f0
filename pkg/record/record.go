package record

import (
	"math"
	"strings"
)

// MigrationSuccessful is the MigrationStatus value of a completed migration.
const MigrationSuccessful = "Successful"

// Record is one bird-migration observation.
//
// Records are immutable once loaded and are shared read-only between the
// hierarchy builder and the linked-view aggregations. Numeric readings that
// could not be parsed hold NaN; months that could not be parsed hold 0.
type Record struct {
	Reason           string `json:"reason"`
	Species          string `json:"species"`
	Continent        string `json:"continent"`
	Habitat          string `json:"habitat,omitempty"`
	WeatherCondition string `json:"weather_condition,omitempty"`
	MigrationStatus  string `json:"migration_status,omitempty"`

	Temperature float64 `json:"temperature"` // Kelvin
	Humidity    float64 `json:"humidity"`    // percent
	Pressure    float64 `json:"pressure"`    // hPa
	WindSpeed   float64 `json:"wind_speed"`  // km/h

	StartMonth int `json:"start_month,omitempty"`
	EndMonth   int `json:"end_month,omitempty"`
}

// HasGroupingKeys reports whether the record carries all three keys the
// migration hierarchy is grouped by.
func (r Record) HasGroupingKeys() bool {
	return r.Reason != "" && r.Species != "" && r.Continent != ""
}

// Successful reports whether the migration completed.
func (r Record) Successful() bool { return r.MigrationStatus == MigrationSuccessful }

// TemperatureCelsius converts the stored Kelvin reading back to °C.
func (r Record) TemperatureCelsius() float64 { return r.Temperature - kelvinOffset }

const kelvinOffset = 273.15

// =============================================================================
// Categorical keys
// =============================================================================

// Key names a categorical field that records can be grouped by.
type Key string

// Grouping keys.
const (
	KeyReason    Key = "reason"
	KeySpecies   Key = "species"
	KeyContinent Key = "continent"
	KeyHabitat   Key = "habitat"
	KeyWeather   Key = "weather"
	KeyStatus    Key = "status"
)

// Keys lists every grouping key in display order.
var Keys = []Key{KeyReason, KeySpecies, KeyContinent, KeyHabitat, KeyWeather, KeyStatus}

// HierarchyKeys are the keys of the reason → species → continent hierarchy,
// outermost first.
var HierarchyKeys = []Key{KeyReason, KeySpecies, KeyContinent}

// ParseKey resolves a user-supplied key name. Matching ignores case and
// accepts "weather_condition" as an alias for "weather".
func ParseKey(s string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reason", "migration_reason":
		return KeyReason, true
	case "species":
		return KeySpecies, true
	case "continent", "region":
		return KeyContinent, true
	case "habitat":
		return KeyHabitat, true
	case "weather", "weather_condition", "weathercondition":
		return KeyWeather, true
	case "status", "migration_success", "success":
		return KeyStatus, true
	}
	return "", false
}

// Category returns the record's value for a categorical key.
// Unknown keys yield "".
func (r Record) Category(k Key) string {
	switch k {
	case KeyReason:
		return r.Reason
	case KeySpecies:
		return r.Species
	case KeyContinent:
		return r.Continent
	case KeyHabitat:
		return r.Habitat
	case KeyWeather:
		return r.WeatherCondition
	case KeyStatus:
		return r.MigrationStatus
	}
	return ""
}

// =============================================================================
// Numeric axes
// =============================================================================

// Axis names a numeric reading.
type Axis string

// Numeric axes.
const (
	AxisTemperature Axis = "temperature"
	AxisHumidity    Axis = "humidity"
	AxisPressure    Axis = "pressure"
	AxisWindSpeed   Axis = "windspeed"
)

// Axes lists every numeric axis in display order.
var Axes = []Axis{AxisTemperature, AxisHumidity, AxisPressure, AxisWindSpeed}

// ParseAxis resolves a user-supplied axis name, ignoring case.
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temperature", "temp":
		return AxisTemperature, true
	case "humidity":
		return AxisHumidity, true
	case "pressure":
		return AxisPressure, true
	case "windspeed", "wind_speed", "wind":
		return AxisWindSpeed, true
	}
	return "", false
}

// Label returns a human-readable axis label with units.
func (a Axis) Label() string {
	switch a {
	case AxisTemperature:
		return "Temperature (K)"
	case AxisHumidity:
		return "Humidity (%)"
	case AxisPressure:
		return "Pressure (hPa)"
	case AxisWindSpeed:
		return "Wind Speed (km/h)"
	}
	return string(a)
}

// Reading returns the record's value on a numeric axis, or NaN for an
// unknown axis.
func (r Record) Reading(a Axis) float64 {
	switch a {
	case AxisTemperature:
		return r.Temperature
	case AxisHumidity:
		return r.Humidity
	case AxisPressure:
		return r.Pressure
	case AxisWindSpeed:
		return r.WindSpeed
	}
	return math.NaN()
}
