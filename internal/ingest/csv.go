package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tabprep/internal/dataset"
)

// missingTokens are the cell spellings treated as the missing marker,
// matching the common NA conventions of exported tabular data.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
}

func isMissingToken(raw string) bool {
	return missingTokens[strings.TrimSpace(raw)]
}

// ParseCSV reads a comma-separated file with a header row into a dataset.
func ParseCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		records = append(records, record)
	}

	return datasetFromRows(header, records)
}

// datasetFromRows builds a dataset from a header row and data rows,
// inferring each column's kind from its value distribution. Short rows
// are padded with missing cells.
func datasetFromRows(header []string, rows [][]string) (*dataset.Dataset, error) {
	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		cells := make([]dataset.Cell, len(rows))
		for r, row := range rows {
			if i >= len(row) || isMissingToken(row[i]) {
				cells[r] = dataset.MissingCell()
				continue
			}
			cells[r] = dataset.NewCell(strings.TrimSpace(row[i]))
		}
		columns[i] = dataset.Column{
			Name:  strings.TrimSpace(name),
			Kind:  inferKind(cells),
			Cells: cells,
		}
	}
	return dataset.New(columns)
}

// inferKind classifies a column as numeric when every non-missing cell
// parses as a float. A column with no non-missing cells is numeric, so
// an all-missing column can still receive a numeric fill later.
func inferKind(cells []dataset.Cell) dataset.Kind {
	for _, cell := range cells {
		if cell.Missing {
			continue
		}
		if _, err := strconv.ParseFloat(cell.Value, 64); err != nil {
			return dataset.KindCategorical
		}
	}
	return dataset.KindNumeric
}
