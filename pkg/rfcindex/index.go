// Package rfcindex reads the RFC Editor's rfc-index.xml catalog.
//
// The index is large (tens of thousands of entries), so records are decoded
// as a token stream and handed to a callback one at a time instead of
// loading the whole document into memory.
//
// The reader is a thin collaborator: it yields raw record fields exactly as
// the index declares them. Identifier normalization and graph assembly
// happen in the pipeline, not here. A failure to open or parse the index is
// the one fatal condition of a run and is returned as an error; per-record
// oddities (missing dates, empty abstracts) yield empty fields instead.
package rfcindex

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Namespace is the XML namespace of rfc-index.xml.
const Namespace = "https://www.rfc-editor.org/rfc-index"

// Record is one rfc-entry element of the index, fields untrimmed of
// semantics: identifiers appear exactly as declared (e.g. "RFC0793").
type Record struct {
	DocID    string
	Title    string
	Year     string
	Month    string
	Abstract string

	Obsoletes   []string
	ObsoletedBy []string
	Updates     []string
	UpdatedBy   []string
}

// ReadFile streams records from the index file at path, invoking fn for
// each rfc-entry in document order. See [Read].
func ReadFile(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := Read(f, fn); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Read streams records from r, invoking fn for each rfc-entry in document
// order. Decoding stops at the first XML error or the first error returned
// by fn; either aborts the run.
func Read(r io.Reader, fn func(Record) error) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode index: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "rfc-entry" {
			continue
		}

		var e entry
		if err := dec.DecodeElement(&e, &start); err != nil {
			return fmt.Errorf("decode rfc-entry: %w", err)
		}
		if err := fn(e.record()); err != nil {
			return err
		}
	}
}

// entry mirrors the rfc-entry element shape.
type entry struct {
	DocID    string   `xml:"doc-id"`
	Title    string   `xml:"title"`
	Date     date     `xml:"date"`
	Abstract flatText `xml:"abstract"`

	Obsoletes   docIDList `xml:"obsoletes"`
	ObsoletedBy docIDList `xml:"obsoleted-by"`
	Updates     docIDList `xml:"updates"`
	UpdatedBy   docIDList `xml:"updated-by"`
}

type date struct {
	Month string `xml:"month"`
	Year  string `xml:"year"`
}

type docIDList struct {
	IDs []string `xml:"doc-id"`
}

func (e *entry) record() Record {
	return Record{
		DocID:       strings.TrimSpace(e.DocID),
		Title:       strings.TrimSpace(e.Title),
		Year:        strings.TrimSpace(e.Date.Year),
		Month:       strings.TrimSpace(e.Date.Month),
		Abstract:    string(e.Abstract),
		Obsoletes:   trimAll(e.Obsoletes.IDs),
		ObsoletedBy: trimAll(e.ObsoletedBy.IDs),
		Updates:     trimAll(e.Updates.IDs),
		UpdatedBy:   trimAll(e.UpdatedBy.IDs),
	}
}

func trimAll(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if t := strings.TrimSpace(id); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// flatText flattens possibly nested markup (the abstract holds one or more
// <p> children) to the concatenated character data of every descendant.
type flatText string

func (f *flatText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
	*f = flatText(strings.TrimSpace(sb.String()))
	return nil
}
