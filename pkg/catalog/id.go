package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID is returned by [ParseID] when the input cannot be read as
// an RFC identifier (no digits, or a digit run longer than four).
var ErrInvalidID = errors.New("invalid RFC identifier")

// EntryID is a canonical RFC identifier of the form "RFC<n>" where <n> is
// the decimal number without leading zeros (e.g. "RFC7", "RFC9110").
//
// Every relation list in the catalog stores identifiers in this form only.
// Mixing canonical and raw forms would silently fork the graph into
// duplicate nodes, so all external input must pass through [ParseID] or
// [CanonicalID] before touching a [Store].
type EntryID string

// CanonicalID builds the canonical identifier for an RFC number.
func CanonicalID(n int) EntryID {
	return EntryID("RFC" + strconv.Itoa(n))
}

// ParseID normalizes a raw identifier to its canonical form.
//
// Accepted inputs are case-insensitive and padding-tolerant: "RFC0007",
// "rfc 7", "RFC7" and "7" all normalize to "RFC7". RFC numbers have at
// most four digits; longer digit runs are rejected.
func ParseID(raw string) (EntryID, error) {
	s := strings.TrimSpace(raw)
	if prefix := strings.ToUpper(s); strings.HasPrefix(prefix, "RFC") {
		s = strings.TrimSpace(s[3:])
	}
	if s == "" || len(s) > 4 {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return CanonicalID(n), nil
}

// Number returns the numeric part of the identifier.
func (id EntryID) Number() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(string(id), "RFC"))
	return n
}

// String returns the canonical textual form.
func (id EntryID) String() string { return string(id) }
