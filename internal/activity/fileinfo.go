package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/emiliopalmerini/mreport/internal/util"
)

type fileDescriptor struct {
	Filename looseString     `json:"filename"`
	Filesize json.RawMessage `json:"filesize"`
}

// parseFileInfo renders projectFileInfo as "a.mp4 (2.00 MB), b.wav (500 B)".
// The value may be a JSON array of descriptors or a string holding one.
// Anything that is valid JSON but not a non-empty array yields "".
func parseFileInfo(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}

	payload := bytes.TrimSpace(raw)
	if payload[0] == '"' {
		var encoded string
		if err := json.Unmarshal(payload, &encoded); err != nil {
			return "", err
		}
		payload = bytes.TrimSpace([]byte(encoded))
		if len(payload) == 0 {
			return "", nil
		}
	}

	if payload[0] != '[' {
		if !json.Valid(payload) {
			return "", errors.New("invalid JSON")
		}
		return "", nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(items))
	for i, item := range items {
		var fd fileDescriptor
		if err := json.Unmarshal(item, &fd); err != nil {
			return "", fmt.Errorf("file %d: %w", i, err)
		}
		var size int64
		if !isNull(fd.Filesize) {
			v, err := decodeScalar(fd.Filesize)
			if err != nil {
				return "", fmt.Errorf("file %d: %w", i, err)
			}
			if size, err = util.ToInt64(v); err != nil {
				return "", fmt.Errorf("file %d filesize: %w", i, err)
			}
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", fd.Filename, util.OrNoValue(util.FormatBytes(size))))
	}
	return strings.Join(parts, ", "), nil
}
