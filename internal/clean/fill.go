package clean

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"tabprep/internal/dataset"
)

// Method names the statistic (or literal) a FillStrategy imputes with.
type Method string

const (
	MethodMean     Method = "mean"
	MethodMedian   Method = "median"
	MethodMode     Method = "mode"
	MethodConstant Method = "constant"
)

// FillConfig parameterizes a FillStrategy. FillValue is consulted only
// when Method is "constant". The config is immutable after construction.
type FillConfig struct {
	Method    Method
	FillValue *string
}

// FillStrategy replaces missing cells with a per-column statistic or a
// constant literal. Mean and median apply to numeric columns only; mode
// applies to every column; constant fills everything.
type FillStrategy struct {
	cfg FillConfig
}

// NewFillStrategy builds the strategy. The method name is not checked
// here: an unknown method is handled at Handle time by returning the
// input unchanged with a warning diagnostic.
func NewFillStrategy(cfg FillConfig) *FillStrategy {
	return &FillStrategy{cfg: cfg}
}

// Handle returns a new dataset with missing cells filled per the
// configured method. Columns whose statistic is undefined (no
// non-missing cells) are skipped with a diagnostic.
func (s *FillStrategy) Handle(ds *dataset.Dataset) (*dataset.Dataset, []Diagnostic, error) {
	slog.Info("Filling missing values", slog.String("method", string(s.cfg.Method)))

	out := ds.Clone()
	var diags []Diagnostic

	switch s.cfg.Method {
	case MethodMean, MethodMedian:
		diags = s.fillNumeric(out)
	case MethodMode:
		diags = s.fillMode(out)
	case MethodConstant:
		if s.cfg.FillValue == nil {
			return nil, nil, ErrMissingFillValue
		}
		s.fillConstant(out, *s.cfg.FillValue)
	default:
		msg := fmt.Sprintf("%q is an unknown fill method, no missing values handled", s.cfg.Method)
		slog.Warn(msg)
		return out, []Diagnostic{{Message: msg}}, nil
	}

	slog.Info("Missing values filled", slog.Int("diagnostics", len(diags)))
	return out, diags, nil
}

// fillNumeric imputes mean or median into numeric columns. Categorical
// columns are left untouched, missing cells and all.
func (s *FillStrategy) fillNumeric(ds *dataset.Dataset) []Diagnostic {
	var diags []Diagnostic
	for _, col := range ds.Columns() {
		if col.Kind != dataset.KindNumeric {
			continue
		}
		values, err := col.NumericValues()
		if err != nil || len(values) == 0 {
			diags = append(diags, skipDiag(col.Name, string(s.cfg.Method)))
			continue
		}

		var stat float64
		if s.cfg.Method == MethodMean {
			stat = mean(values)
		} else {
			stat = median(values)
		}
		replaceMissing(col.Cells, formatNumber(stat))
	}
	return diags
}

// fillMode imputes the most frequent non-missing value into every
// column. Ties break to the first value that reaches the maximum
// frequency in row order, which is stable across runs of the same input.
func (s *FillStrategy) fillMode(ds *dataset.Dataset) []Diagnostic {
	var diags []Diagnostic
	for _, col := range ds.Columns() {
		counts := make(map[string]int)
		best := ""
		bestCount := 0
		for _, cell := range col.Cells {
			if cell.Missing {
				continue
			}
			counts[cell.Value]++
			if counts[cell.Value] > bestCount {
				best = cell.Value
				bestCount = counts[cell.Value]
			}
		}
		if bestCount == 0 {
			diags = append(diags, skipDiag(col.Name, string(MethodMode)))
			continue
		}
		replaceMissing(col.Cells, best)
	}
	return diags
}

// fillConstant writes the literal into every missing cell of every
// column. For a numeric column a literal that parses as a number is
// stored in canonical formatting; the column's kind is never changed.
func (s *FillStrategy) fillConstant(ds *dataset.Dataset, literal string) {
	for _, col := range ds.Columns() {
		value := literal
		if col.Kind == dataset.KindNumeric {
			if v, err := strconv.ParseFloat(literal, 64); err == nil {
				value = formatNumber(v)
			}
		}
		replaceMissing(col.Cells, value)
	}
}

func skipDiag(column, method string) Diagnostic {
	d := Diagnostic{
		Column:  column,
		Message: fmt.Sprintf("column has no non-missing values, %s fill skipped", method),
	}
	slog.Warn(d.Message, slog.String("column", column))
	return d
}

func replaceMissing(cells []dataset.Cell, value string) {
	for i, cell := range cells {
		if cell.Missing {
			cells[i] = dataset.NewCell(value)
		}
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median averages the two middle values for an even count.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
