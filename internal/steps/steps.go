// Package steps exposes the two pipeline step contracts: ingesting a
// container archive into a dataset, and handling its missing values with
// a named strategy. Orchestration of the steps belongs to callers.
package steps

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"tabprep/internal/clean"
	"tabprep/internal/config"
	"tabprep/internal/dataset"
	"tabprep/internal/ingest"
)

// containerExt is the container type this pipeline handles. The lookup
// extension is fixed; the step never sniffs arbitrary extensions.
const containerExt = ".zip"

// NewRegistry builds the default ingestor registry with its staging root
// taken from the configuration.
func NewRegistry(cfg *config.Config) *ingest.Registry {
	return ingest.NewDefaultRegistry(cfg.Paths.StagingDir)
}

// IngestData resolves the archive ingestor from the registry and ingests
// the container at path into a dataset.
func IngestData(reg *ingest.Registry, path string) (*dataset.Dataset, error) {
	traceID := uuid.New().String()
	slog.Info("Starting data ingestion step",
		slog.String("trace_id", traceID),
		slog.String("path", path),
		slog.String("extension", containerExt))

	ing, err := reg.Resolve(containerExt)
	if err != nil {
		return nil, err
	}

	ds, err := ing.Ingest(path)
	if err != nil {
		return nil, fmt.Errorf("ingestion of %s failed: %w", filepath.Base(path), err)
	}

	slog.Info("Data ingestion step complete",
		slog.String("trace_id", traceID),
		slog.Int("rows", ds.RowCount()),
		slog.Int("columns", ds.ColumnCount()))
	return ds, nil
}

// HandleMissingValues cleans the dataset with the named strategy. Valid
// names are "drop", "mean", "median", "mode", and "constant"; anything
// else is a fatal ErrInvalidStrategyParameter. "drop" removes rows that
// have any missing cell; for "constant", fillValue supplies the literal.
//
// Note the asymmetry with clean.FillStrategy: an unknown method inside
// the strategy warns and returns the input unchanged, while an unknown
// name at this selection boundary is an error.
func HandleMissingValues(ds *dataset.Dataset, strategy string, fillValue *string) (*dataset.Dataset, []clean.Diagnostic, error) {
	traceID := uuid.New().String()
	slog.Info("Starting missing value handling step",
		slog.String("trace_id", traceID),
		slog.String("strategy", strategy))

	var handler *clean.Handler
	switch strategy {
	case "drop":
		drop, err := clean.NewDropStrategy(clean.DropConfig{Axis: clean.AxisRow})
		if err != nil {
			return nil, nil, err
		}
		handler = clean.NewHandler(drop)
	case "mean", "median", "mode", "constant":
		handler = clean.NewHandler(clean.NewFillStrategy(clean.FillConfig{
			Method:    clean.Method(strategy),
			FillValue: fillValue,
		}))
	default:
		return nil, nil, fmt.Errorf("%w: unsupported strategy %q", clean.ErrInvalidStrategyParameter, strategy)
	}

	out, diags, err := handler.Apply(ds)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Missing value handling step complete",
		slog.String("trace_id", traceID),
		slog.Int("rows", out.RowCount()),
		slog.Int("columns", out.ColumnCount()),
		slog.Int("diagnostics", len(diags)))
	return out, diags, nil
}
