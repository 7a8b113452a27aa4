package geojson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists feature collections under a single output directory
// and purges stale intermediate files between runs.
type Writer struct {
	Dir string
}

func (w *Writer) Path(filename string) string {
	return filepath.Join(w.Dir, filename)
}

// Write serializes the collection as pretty-printed GeoJSON to
// filename inside the output directory, creating the directory if
// needed and overwriting any existing file. It returns the written
// path.
func (w *Writer) Write(c *FeatureCollection, filename string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed creating output directory %q: %w", w.Dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed encoding feature collection: %w", err)
	}

	path := w.Path(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed writing %q: %w", path, err)
	}

	return path, nil
}

// CleanOld deletes every XML file directly inside the output
// directory. A missing directory or an empty match set is not an
// error.
func (w *Writer) CleanOld() error {
	matches, err := filepath.Glob(filepath.Join(w.Dir, "*.xml"))
	if err != nil {
		return fmt.Errorf("failed matching old XML files: %w", err)
	}

	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("failed removing %q: %w", m, err)
		}
	}

	return nil
}

// ReadCollection loads a previously written collection from filename
// inside the output directory.
func (w *Writer) ReadCollection(filename string) (*FeatureCollection, error) {
	f, err := os.Open(w.Path(filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
