package ingest_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprep/internal/ingest"
)

const housesCSV = "price,city\n100,Ames\n,Gilbert\n300,\n"

func writeZip(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for entryName, content := range entries {
		entry, err := w.Create(entryName)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestZipIngest(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, dir, "archive.zip", map[string]string{
		"houses.csv": housesCSV,
		"README.txt": "not tabular",
	})

	ing := ingest.NewZipIngestor(filepath.Join(dir, "staging"))
	ds, err := ing.Ingest(archive)
	require.NoError(t, err)

	// The ingested dataset matches a direct parse of the same CSV.
	direct, err := ingest.ParseCSV(writeFile(t, dir, "direct.csv", housesCSV))
	require.NoError(t, err)

	assert.Equal(t, direct.ColumnNames(), ds.ColumnNames())
	assert.Equal(t, direct.RowCount(), ds.RowCount())
	for i, want := range direct.Columns() {
		got := ds.Columns()[i]
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.Cells, got.Cells)
	}
}

func TestZipIngestNestedCSV(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, dir, "archive.zip", map[string]string{
		"inner/houses.csv": housesCSV,
	})

	ing := ingest.NewZipIngestor(filepath.Join(dir, "staging"))
	ds, err := ing.Ingest(archive)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.RowCount())
}

func TestZipIngestWrongExtension(t *testing.T) {
	ing := ingest.NewZipIngestor(t.TempDir())

	_, err := ing.Ingest("data/archive.tar.gz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrInvalidInput)
}

func TestZipIngestNoCSV(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, dir, "empty.zip", map[string]string{
		"README.txt": "nothing tabular here",
	})

	ing := ingest.NewZipIngestor(filepath.Join(dir, "staging"))
	_, err := ing.Ingest(archive)
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrSourceNotFound)
}

func TestZipIngestMultipleCSV(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, dir, "two.zip", map[string]string{
		"a.csv": housesCSV,
		"b.csv": housesCSV,
	})

	ing := ingest.NewZipIngestor(filepath.Join(dir, "staging"))
	_, err := ing.Ingest(archive)
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrAmbiguousSource)
}

func TestZipIngestIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	staging := filepath.Join(dir, "staging")
	archive := writeZip(t, dir, "archive.zip", map[string]string{
		"houses.csv": housesCSV,
	})

	ing := ingest.NewZipIngestor(staging)
	_, err := ing.Ingest(archive)
	require.NoError(t, err)

	// A second run overwrites the staging content instead of duplicating
	// it, so the single-CSV check still passes.
	ds, err := ing.Ingest(archive)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.RowCount())
}

func TestZipIngestRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, dir, "evil.zip", map[string]string{
		"../escape.csv": housesCSV,
	})

	ing := ingest.NewZipIngestor(filepath.Join(dir, "staging"))
	_, err := ing.Ingest(archive)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes staging directory")
}
