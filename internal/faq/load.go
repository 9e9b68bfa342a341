package faq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Decode parses a FAQ list. It accepts a bare JSON array or an object whose
// "default" field holds the array. Comments and trailing commas are allowed.
// Anything else decodes to an empty list; elements that are not valid
// records are skipped.
func Decode(data []byte) []Record {
	data = bytes.TrimSpace(jsonc.ToJSON(data))
	if len(data) == 0 {
		return []Record{}
	}

	var raw []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return []Record{}
		}
	case '{':
		var wrapper struct {
			Default json.RawMessage `json:"default"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return []Record{}
		}
		if err := json.Unmarshal(wrapper.Default, &raw); err != nil {
			return []Record{}
		}
	default:
		return []Record{}
	}

	records := make([]Record, 0, len(raw))
	for _, elem := range raw {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			continue
		}
		var r Record
		if err := json.Unmarshal(elem, &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// LoadFile reads and decodes the FAQ file at path. Only I/O failures are
// reported; malformed content yields an empty list.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ file: %w", err)
	}
	return Decode(data), nil
}
