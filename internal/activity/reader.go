package activity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ReadEvents decodes the export records stored in paths, in order.
// Each file holds either one JSON record per line or a single JSON array of
// records. Records that fail to decode are logged and skipped.
func ReadEvents(paths []string, log zerolog.Logger) ([]RawEvent, error) {
	var events []RawEvent
	for _, path := range paths {
		fileEvents, err := readEventsFile(path, log)
		if err != nil {
			return nil, err
		}
		events = append(events, fileEvents...)
	}
	return events, nil
}

func readEventsFile(path string, log zerolog.Logger) ([]RawEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := bufio.NewReaderSize(file, 64*1024)
	first, err := peekNonSpace(r)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading export file %s: %w", path, err)
	}

	if first == '[' {
		return readArray(path, r, log)
	}
	return readLines(path, r, log)
}

func readLines(path string, r io.Reader, log zerolog.Logger) ([]RawEvent, error) {
	var events []RawEvent

	scanner := bufio.NewScanner(r)
	// Increase buffer size for large lines
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev RawEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Warn().Err(err).Str("file", path).Int("line", lineNo).Msg("skipping malformed export record")
			continue
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading export file %s: %w", path, err)
	}
	return events, nil
}

func readArray(path string, r io.Reader, log zerolog.Logger) ([]RawEvent, error) {
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode export file %s: %w", path, err)
	}

	events := make([]RawEvent, 0, len(items))
	for i, item := range items {
		var ev RawEvent
		if err := json.Unmarshal(item, &ev); err != nil {
			log.Warn().Err(err).Str("file", path).Int("record", i+1).Msg("skipping malformed export record")
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := r.ReadByte(); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}
