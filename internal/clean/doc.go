// Package clean implements the missing-value-handling strategies and the
// cleaning context that applies them.
//
// Two strategies share the Strategy contract: DropStrategy removes rows
// or columns with too few non-missing cells, and FillStrategy replaces
// missing cells using mean, median, mode, or a constant literal. Every
// strategy is copy-on-write: Handle clones the input and returns a new
// dataset, so inputs stay reusable and independent pipelines can run
// concurrently without locking.
//
// Non-fatal conditions (an all-missing column skipped during a
// statistical fill, an unknown fill method) are reported as Diagnostic
// values returned from Handle rather than through global logging state.
// Fatal conditions use the package sentinel errors.
package clean
