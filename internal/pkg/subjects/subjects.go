// Package subjects encodes and decodes the reference list a schedule embeds:
// a JSON array of offering identifiers stored as text. All serialization of
// the list lives here; callers only ever see []int64.
package subjects

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes an ordered list of offering identifiers.
func Encode(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode subject list: %w", err)
	}
	return string(raw), nil
}

// Decode parses a serialized reference list back into offering identifiers,
// preserving order. Blank text decodes to an empty list. Malformed content,
// including non-integer tokens, returns an error; callers decide whether
// that is fatal.
func Decode(text string) ([]int64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil, fmt.Errorf("malformed subject list: %w", err)
	}
	return ids, nil
}
