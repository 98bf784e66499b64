package clean

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"

	"tabprep/internal/dataset"
)

// Axis selects whether the drop strategy removes rows or columns.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// DropConfig parameterizes a DropStrategy. It is immutable after
// construction, so a configured strategy can be reapplied safely.
type DropConfig struct {
	Axis Axis `validate:"required,oneof=row column"`

	// Threshold is the minimum count of non-missing cells a row or
	// column needs to be retained. Nil means "retain only if no cell
	// is missing".
	Threshold *int `validate:"omitempty,gte=0"`
}

var validate = validator.New()

// DropStrategy removes rows or columns that have too few non-missing
// cells. Retained rows and columns keep their original relative order;
// column kinds are unchanged.
type DropStrategy struct {
	cfg DropConfig
}

// NewDropStrategy validates the configuration and builds the strategy.
func NewDropStrategy(cfg DropConfig) (*DropStrategy, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategyParameter, err)
	}
	return &DropStrategy{cfg: cfg}, nil
}

// Handle returns a new dataset with under-threshold rows or columns
// removed.
func (s *DropStrategy) Handle(ds *dataset.Dataset) (*dataset.Dataset, []Diagnostic, error) {
	threshold := "none"
	if s.cfg.Threshold != nil {
		threshold = strconv.Itoa(*s.cfg.Threshold)
	}
	slog.Info("Dropping missing values",
		slog.String("axis", string(s.cfg.Axis)),
		slog.String("threshold", threshold))

	var out *dataset.Dataset
	var err error
	if s.cfg.Axis == AxisRow {
		out, err = s.dropRows(ds)
	} else {
		out, err = s.dropColumns(ds)
	}
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Missing values dropped",
		slog.Int("rows", out.RowCount()),
		slog.Int("columns", out.ColumnCount()))
	return out, nil, nil
}

// retain reports whether something with nonMissing real cells out of
// total should be kept.
func (s *DropStrategy) retain(nonMissing, total int) bool {
	if s.cfg.Threshold == nil {
		return nonMissing == total
	}
	return nonMissing >= *s.cfg.Threshold
}

func (s *DropStrategy) dropRows(ds *dataset.Dataset) (*dataset.Dataset, error) {
	cols := ds.Columns()
	var keep []int
	for r := 0; r < ds.RowCount(); r++ {
		nonMissing := 0
		for _, col := range cols {
			if !col.Cells[r].Missing {
				nonMissing++
			}
		}
		if s.retain(nonMissing, len(cols)) {
			keep = append(keep, r)
		}
	}

	columns := make([]dataset.Column, len(cols))
	for i, col := range cols {
		cells := make([]dataset.Cell, 0, len(keep))
		for _, r := range keep {
			cells = append(cells, col.Cells[r])
		}
		columns[i] = dataset.Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	return dataset.New(columns)
}

func (s *DropStrategy) dropColumns(ds *dataset.Dataset) (*dataset.Dataset, error) {
	var columns []dataset.Column
	for _, col := range ds.Columns() {
		if !s.retain(col.NonMissingCount(), ds.RowCount()) {
			continue
		}
		cells := make([]dataset.Cell, len(col.Cells))
		copy(cells, col.Cells)
		columns = append(columns, dataset.Column{Name: col.Name, Kind: col.Kind, Cells: cells})
	}
	return dataset.New(columns)
}
