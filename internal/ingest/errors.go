package ingest

import "errors"

// Ingestion errors. All are fatal; the caller decides whether to retry.
var (
	// ErrUnsupportedFormat is returned by Registry.Resolve when no
	// ingestor is registered for the requested extension.
	ErrUnsupportedFormat = errors.New("ingest: no ingestor for extension")

	// ErrInvalidInput is returned when a path does not carry the
	// extension the ingestor handles.
	ErrInvalidInput = errors.New("ingest: input file has wrong extension")

	// ErrSourceNotFound is returned when a container holds no file of
	// the recognized tabular format.
	ErrSourceNotFound = errors.New("ingest: no tabular file found in container")

	// ErrAmbiguousSource is returned when a container holds more than
	// one candidate tabular file. The ingestor never guesses.
	ErrAmbiguousSource = errors.New("ingest: multiple tabular files found in container")
)
