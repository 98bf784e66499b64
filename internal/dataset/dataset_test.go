package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprep/internal/dataset"
)

func numericColumn(name string, values ...string) dataset.Column {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = dataset.MissingCell()
		} else {
			cells[i] = dataset.NewCell(v)
		}
	}
	return dataset.Column{Name: name, Kind: dataset.KindNumeric, Cells: cells}
}

func TestNew(t *testing.T) {
	ds, err := dataset.New([]dataset.Column{
		numericColumn("price", "100", "", "300"),
		numericColumn("area", "50", "60", "70"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, ds.RowCount())
	assert.Equal(t, 2, ds.ColumnCount())
	assert.Equal(t, []string{"price", "area"}, ds.ColumnNames())
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := dataset.New([]dataset.Column{
		numericColumn("price", "1"),
		numericColumn("price", "2"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := dataset.New([]dataset.Column{
		numericColumn("price", "1", "2"),
		numericColumn("area", "1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cells")
}

func TestColumnLookup(t *testing.T) {
	ds, err := dataset.New([]dataset.Column{numericColumn("price", "1", "")})
	require.NoError(t, err)

	col, ok := ds.Column("price")
	require.True(t, ok)
	assert.Equal(t, 1, col.NonMissingCount())

	_, ok = ds.Column("missing")
	assert.False(t, ok)
}

func TestNumericValues(t *testing.T) {
	col := numericColumn("price", "1.5", "", "3")
	values, err := col.NumericValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3}, values)

	categorical := dataset.Column{
		Name:  "city",
		Kind:  dataset.KindCategorical,
		Cells: []dataset.Cell{dataset.NewCell("Ames")},
	}
	_, err = categorical.NumericValues()
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	ds, err := dataset.New([]dataset.Column{numericColumn("price", "1", "")})
	require.NoError(t, err)

	clone := ds.Clone()
	clone.Columns()[0].Cells[0] = dataset.NewCell("999")

	original, _ := ds.Column("price")
	assert.Equal(t, "1", original.Cells[0].Value)

	cloned, _ := clone.Column("price")
	assert.Equal(t, "999", cloned.Cells[0].Value)
}
