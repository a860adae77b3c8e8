package ports

import (
	"context"
	"errors"
	"time"
)

// ErrNoExportData is returned by an EventExporter when the range holds no events.
var ErrNoExportData = errors.New("no export data for range")

// EventExporter downloads raw analytics events.
type EventExporter interface {
	// Export returns the archive holding every event between start and end, hour granularity.
	Export(ctx context.Context, start, end time.Time) ([]byte, error)
}

// ArchiveExtractor unpacks an export archive.
type ArchiveExtractor interface {
	// Extract writes the decompressed export files into dir and returns their paths.
	Extract(ctx context.Context, archive []byte, dir string) ([]string, error)
}
