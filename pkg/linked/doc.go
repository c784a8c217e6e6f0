// Package linked computes the secondary views that follow the sunburst
// focus: counts of the focused records grouped by habitat, weather, or any
// other record key, plus a short summary card.
//
// The focus path (reason, then species, then continent) selects records
// positionally. Counts keep the order in which categories were first
// encountered, which is also how ties for the most common category are
// broken.
package linked
