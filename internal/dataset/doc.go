// Package dataset defines the in-memory tabular data model shared by the
// ingestion and cleaning packages.
//
// A Dataset is an ordered sequence of uniquely named columns with a row
// count shared by every column. Each column carries a Kind (numeric or
// categorical) fixed at construction, and each cell is either a value or
// the distinguished missing marker.
//
// Datasets are passive values. Ingestors create them, cleaning strategies
// derive new ones via Clone, and no component mutates one in place.
package dataset
