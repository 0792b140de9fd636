// Package models provides the shared data models for adtax.
//
// These types are persisted as JSON in the local key-value store and in
// exported configuration files, so their JSON field names are part of the
// on-disk format.
//
// # Variables
//
// A [Variable] is a named category that contributes one segment to a
// generated file name. Three variable types exist:
//   - [VariableDropdown]: exactly one value from a fixed list
//   - [VariableMultiselect]: zero or more values, joined with a comma
//   - [VariableText]: free text, never checked against the value list
//
// # Configuration
//
// A [Configuration] holds the ordered variables plus the formatting rules
// (case transformation and separator) for one naming scheme:
//
//	cfg := models.Configuration{
//	    Variables:          []models.Variable{{Name: "Size", Type: models.VariableMultiselect}},
//	    CaseTransformation: models.CaseLowercase,
//	    SeparatorCharacter: "_",
//	}
//
// # History
//
// Every generated name is recorded as a [GeneratedNameRecord] whose
// [Metadata] keeps the selected value per known category. The analytics
// view counts values over [AnalyticsFields].
package models
