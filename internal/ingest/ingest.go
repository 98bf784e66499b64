package ingest

import (
	"fmt"
	"strings"
	"sync"

	"tabprep/internal/dataset"
)

// Ingestor parses one container/file format into a dataset.
type Ingestor interface {
	// Ingest reads the file at path and returns its tabular content.
	Ingest(path string) (*dataset.Dataset, error)
}

// Registry maps container-file extensions to ingestors. New formats are
// added by registering a new ingestor under a new extension; existing
// ingestors are never touched.
type Registry struct {
	mu        sync.RWMutex
	ingestors map[string]Ingestor
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ingestors: make(map[string]Ingestor),
	}
}

// NewDefaultRegistry returns a registry with the built-in ingestors
// registered. Archive extraction uses stagingDir as its staging root.
func NewDefaultRegistry(stagingDir string) *Registry {
	r := NewRegistry()
	r.Register(".zip", NewZipIngestor(stagingDir))
	r.Register(".xlsx", NewXLSXIngestor())
	return r
}

// Register adds an ingestor under the given extension (e.g. ".zip").
func (r *Registry) Register(ext string, ing Ingestor) error {
	if ing == nil {
		return fmt.Errorf("cannot register nil ingestor")
	}
	ext = normalizeExt(ext)
	if ext == "" {
		return fmt.Errorf("extension cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ingestors[ext]; exists {
		return fmt.Errorf("ingestor for %s already registered", ext)
	}
	r.ingestors[ext] = ing
	r.order = append(r.order, ext)
	return nil
}

// Resolve returns the ingestor registered for the extension.
func (r *Registry) Resolve(ext string) (Ingestor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, exists := r.ingestors[normalizeExt(ext)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return ing, nil
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, len(r.order))
	copy(exts, r.order)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
