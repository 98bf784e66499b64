package ingest

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tabprep/internal/dataset"
)

// ZipIngestor extracts a .zip archive into a staging directory and parses
// the single CSV file it contains. This is the only component that writes
// to persistent storage.
type ZipIngestor struct {
	stagingDir string
}

// NewZipIngestor creates a zip ingestor staging its extractions under
// stagingDir.
func NewZipIngestor(stagingDir string) *ZipIngestor {
	return &ZipIngestor{stagingDir: stagingDir}
}

// Ingest extracts the archive at path and parses the one CSV inside it.
// It fails with ErrInvalidInput for a non-zip path, ErrSourceNotFound
// when the archive holds no CSV, and ErrAmbiguousSource when it holds
// more than one.
func (z *ZipIngestor) Ingest(path string) (*dataset.Dataset, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return nil, fmt.Errorf("%w: %s is not a .zip file", ErrInvalidInput, path)
	}

	dest, err := z.extract(path)
	if err != nil {
		return nil, err
	}

	csvPath, err := findSingleCSV(dest)
	if err != nil {
		return nil, err
	}

	slog.Info("Parsing extracted tabular file",
		slog.String("archive", path),
		slog.String("csv_path", csvPath))

	return ParseCSV(csvPath)
}

// extract unpacks the archive into a per-archive staging subdirectory.
// The subdirectory is cleared first, so re-running the same ingestion
// overwrites rather than duplicates.
func (z *ZipIngestor) extract(path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer reader.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dest := filepath.Join(z.stagingDir, base)

	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	slog.Info("Extracting archive",
		slog.String("archive", path),
		slog.String("staging_dir", dest),
		slog.Int("entries", len(reader.File)))

	for _, file := range reader.File {
		if err := extractEntry(file, dest); err != nil {
			return "", err
		}
	}
	return dest, nil
}

func extractEntry(file *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(file.Name))

	// Reject entries that would escape the staging directory.
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes staging directory", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file.Name, err)
	}

	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", file.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// findSingleCSV scans the staging directory for CSV files and requires
// exactly one match.
func findSingleCSV(dir string) (string, error) {
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan staging directory: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, dir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: found %d in %s", ErrAmbiguousSource, len(matches), dir)
	}
}
