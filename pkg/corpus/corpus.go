// Package corpus provides best-effort retrieval of RFC document text.
//
// Document text drives citation extraction only. A missing document is a
// normal, recoverable condition: plenty of early RFCs have no machine-
// readable text. Callers check for [ErrNotFound] and degrade to an empty
// citation list rather than failing the run.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mboehme/rfsee/pkg/catalog"
)

// ErrNotFound is returned when no document text exists for an identifier.
var ErrNotFound = errors.New("document text not found")

// Source retrieves the full text of an RFC document.
type Source interface {
	// Text returns the document text for id, or an error wrapping
	// [ErrNotFound] when the document is absent.
	Text(id catalog.EntryID) (string, error)
}

// Dir is a Source backed by a directory of plain-text documents, as
// published by the RFC Editor ("rfc791.txt", "rfc0007.txt", ...).
//
// Lookups tolerate numeric-padding variants: for RFC7 both "rfc7.txt" and
// "rfc0007.txt" are tried, unpadded first.
type Dir struct {
	path string
}

// NewDir creates a directory-backed source rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Text implements Source.
func (d *Dir) Text(id catalog.EntryID) (string, error) {
	names := []string{
		fmt.Sprintf("rfc%d.txt", id.Number()),
		fmt.Sprintf("rfc%04d.txt", id.Number()),
	}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(d.path, name))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Map is an in-memory Source keyed by canonical identifier, used in tests
// and for small hand-built corpora.
type Map map[catalog.EntryID]string

// Text implements Source.
func (m Map) Text(id catalog.EntryID) (string, error) {
	text, ok := m[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return text, nil
}
