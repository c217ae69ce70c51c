package cvfolio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StampLength is the fixed width of a version stamp.
const StampLength = 6

// Stamp computes the 6-character version stamp of a document.
//
// The document is serialized to canonical JSON (struct field order), then
// hashed with a DJB2-style rolling hash: the accumulator starts at 5381, and
// each code point is folded in as ((h << 5) + h) ^ cp. Arithmetic is done on
// uint32 so the 32-bit wraparound matches previously shared stamps. The final
// value is rendered in uppercase base-36, left-padded with '0' to 6 digits,
// and truncated to its last 6 digits.
//
// Stamps are fingerprints, not integrity checks: collisions are accepted.
func Stamp(doc *Document) (string, error) {
	if doc == nil {
		return "", ErrEmptyDocument
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return StampString(string(data)), nil
}

// StampString computes the version stamp of an already-serialized document.
// Callers that fetched raw JSON should prefer Stamp on the decoded Document
// so that stamps stay independent of upstream whitespace.
func StampString(serialized string) string {
	h := uint32(5381)
	for _, cp := range serialized {
		h = ((h << 5) + h) ^ uint32(cp)
	}

	s := strings.ToUpper(strconv.FormatUint(uint64(h), 36))
	if n := len(s); n < StampLength {
		s = strings.Repeat("0", StampLength-n) + s
	}
	return s[len(s)-StampLength:]
}
