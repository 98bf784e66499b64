package clean

import (
	"log/slog"

	"tabprep/internal/dataset"
)

// Diagnostic reports a non-fatal condition observed while a strategy ran.
// Diagnostics are returned alongside the result so callers can observe
// them without global state; the operation still completes.
type Diagnostic struct {
	Column  string
	Message string
}

// Strategy is one missing-value-handling algorithm. Handle never mutates
// its input; it returns a new dataset reflecting the policy.
type Strategy interface {
	Handle(ds *dataset.Dataset) (*dataset.Dataset, []Diagnostic, error)
}

// Handler is the cleaning context. It holds exactly one active strategy
// and delegates Apply to it. Each Apply call is independent: the handler
// keeps no memory of prior inputs or outputs.
type Handler struct {
	strategy Strategy
}

// NewHandler creates a handler with the given initial strategy.
func NewHandler(strategy Strategy) *Handler {
	return &Handler{strategy: strategy}
}

// SetStrategy swaps the active strategy. Datasets already produced are
// unaffected.
func (h *Handler) SetStrategy(strategy Strategy) {
	slog.Info("Switching missing value handling strategy")
	h.strategy = strategy
}

// Apply runs the active strategy on the dataset.
func (h *Handler) Apply(ds *dataset.Dataset) (*dataset.Dataset, []Diagnostic, error) {
	return h.strategy.Handle(ds)
}
