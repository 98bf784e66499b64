package clean

import "errors"

// Cleaning errors. Both are fatal and propagate to the caller.
var (
	// ErrInvalidStrategyParameter is returned for an unrecognized
	// strategy name at the selection boundary, or for an invalid axis
	// or threshold on the drop strategy.
	ErrInvalidStrategyParameter = errors.New("clean: invalid strategy parameter")

	// ErrMissingFillValue is returned when a constant fill is requested
	// without a literal to fill with.
	ErrMissingFillValue = errors.New("clean: constant fill requested without a fill value")
)
