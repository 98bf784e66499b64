package dataset

import (
	"fmt"
	"strconv"
)

// Kind identifies how a column's values should be interpreted.
// It is inferred once, when the dataset is built by an ingestor, and is
// never changed by a cleaning operation.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Cell is a single value in a column. A missing cell carries no value.
type Cell struct {
	Value   string
	Missing bool
}

// NewCell returns a cell holding the given value.
func NewCell(value string) Cell {
	return Cell{Value: value}
}

// MissingCell returns the distinguished missing marker.
func MissingCell() Cell {
	return Cell{Missing: true}
}

// Column is a named, typed sequence of cells.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// NonMissingCount returns the number of cells holding real data.
func (c Column) NonMissingCount() int {
	count := 0
	for _, cell := range c.Cells {
		if !cell.Missing {
			count++
		}
	}
	return count
}

// NumericValues returns the parsed non-missing values of a numeric column.
func (c Column) NumericValues() ([]float64, error) {
	if c.Kind != KindNumeric {
		return nil, fmt.Errorf("column %s is not numeric", c.Name)
	}
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Missing {
			continue
		}
		v, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: cell %q is not numeric: %w", c.Name, cell.Value, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Dataset is an in-memory table of named columns sharing one row count.
// It is a passive value: ingestors create it, strategies derive new
// datasets from it, and nothing mutates it in place.
type Dataset struct {
	columns []Column
	byName  map[string]int
	rows    int
}

// New builds a dataset from the given columns. Column names must be
// unique and every column must have the same number of cells.
func New(columns []Column) (*Dataset, error) {
	d := &Dataset{
		columns: columns,
		byName:  make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if _, exists := d.byName[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		d.byName[col.Name] = i
		if i == 0 {
			d.rows = len(col.Cells)
		} else if len(col.Cells) != d.rows {
			return nil, fmt.Errorf("column %q has %d cells, want %d", col.Name, len(col.Cells), d.rows)
		}
	}
	return d, nil
}

// RowCount returns the number of rows shared by all columns.
func (d *Dataset) RowCount() int {
	return d.rows
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// Columns returns the columns in their original order.
func (d *Dataset) Columns() []Column {
	return d.columns
}

// Column returns the named column, if present.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[i], true
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Clone returns a deep copy. Strategies start from a clone so the input
// dataset is never touched.
func (d *Dataset) Clone() *Dataset {
	columns := make([]Column, len(d.columns))
	for i, col := range d.columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		columns[i] = Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	clone, _ := New(columns)
	return clone
}
