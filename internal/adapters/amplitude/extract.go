package amplitude

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor unpacks Export API archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decompresses every gzipped JSON file in archive into dir and
// returns the written paths in archive order. Directory structure inside the
// archive is flattened.
func (x *Extractor) Extract(ctx context.Context, archive []byte, dir string) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("opening export archive: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating extract directory: %w", err)
	}

	var paths []string
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ".json.gz") {
			continue
		}

		name := strings.TrimSuffix(filepath.Base(f.Name), ".gz")
		path := filepath.Join(dir, name)
		if err := extractFile(f, path); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extractFile(f *zip.File, path string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	gz, err := gzip.NewReader(rc)
	if err != nil {
		return err
	}
	defer gz.Close()

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, gz); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
