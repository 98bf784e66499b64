package ingest

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"tabprep/internal/dataset"
)

// XLSXIngestor parses the first sheet of an Excel workbook. The first row
// is the header; missing tokens and kind inference follow the same rules
// as the CSV path.
type XLSXIngestor struct{}

// NewXLSXIngestor creates an Excel workbook ingestor.
func NewXLSXIngestor() *XLSXIngestor {
	return &XLSXIngestor{}
}

// Ingest reads the workbook at path into a dataset.
func (x *XLSXIngestor) Ingest(path string) (*dataset.Dataset, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, fmt.Errorf("%w: %s is not a .xlsx file", ErrInvalidInput, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceNotFound)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", ErrSourceNotFound, sheets[0])
	}

	slog.Info("Parsing workbook sheet",
		slog.String("workbook", path),
		slog.String("sheet", sheets[0]),
		slog.Int("total_rows", len(rows)))

	return datasetFromRows(rows[0], rows[1:])
}
