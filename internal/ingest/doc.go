// Package ingest locates and parses tabular files inside container
// archives, producing dataset.Dataset values for the cleaning pipeline.
//
// # Architecture
//
// Dispatch is by file extension: a Registry maps an extension to an
// Ingestor, and new formats are supported by registering new ingestors
// without modifying existing ones. Two ingestors ship with the package:
//
//  1. ZipIngestor: extracts a .zip archive into a staging directory and
//     parses the single CSV it must contain
//  2. XLSXIngestor: reads the first sheet of an Excel workbook
//
// Both infer a kind (numeric or categorical) for every column at parse
// time; the kind is fixed for the rest of the pipeline.
//
// # Error Handling
//
// Resolution and ingestion failures use the package sentinel errors
// (ErrUnsupportedFormat, ErrInvalidInput, ErrSourceNotFound,
// ErrAmbiguousSource), wrapped with context. A container with several
// candidate files is an error, never a guess.
//
// # Side Effects
//
// ZipIngestor is the only component in the module that writes to disk.
// Extraction is idempotent: each archive stages into its own
// subdirectory, cleared before every run.
package ingest
