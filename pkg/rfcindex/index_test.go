package rfcindex

import (
	"errors"
	"strings"
	"testing"
)

const sampleIndex = `<?xml version="1.0" encoding="UTF-8"?>
<rfc-index xmlns="https://www.rfc-editor.org/rfc-index">
  <rfc-entry>
    <doc-id>RFC0791</doc-id>
    <title>Internet Protocol</title>
    <date><month>September</month><year>1981</year></date>
    <abstract><p>First paragraph.</p><p>Second paragraph.</p></abstract>
    <obsoletes><doc-id>RFC0760</doc-id></obsoletes>
    <updated-by><doc-id>RFC1349</doc-id><doc-id>RFC2474</doc-id></updated-by>
  </rfc-entry>
  <rfc-entry>
    <doc-id>RFC0792</doc-id>
    <title>Internet Control Message Protocol</title>
    <date><month>September</month><year>1981</year></date>
  </rfc-entry>
</rfc-index>`

func TestRead(t *testing.T) {
	var records []Record
	err := Read(strings.NewReader(sampleIndex), func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	r := records[0]
	if r.DocID != "RFC0791" {
		t.Errorf("DocID = %q", r.DocID)
	}
	if r.Title != "Internet Protocol" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Year != "1981" || r.Month != "September" {
		t.Errorf("date = %q %q", r.Month, r.Year)
	}
	if !strings.Contains(r.Abstract, "First paragraph.") || !strings.Contains(r.Abstract, "Second paragraph.") {
		t.Errorf("Abstract not flattened from nested paragraphs: %q", r.Abstract)
	}
	if len(r.Obsoletes) != 1 || r.Obsoletes[0] != "RFC0760" {
		t.Errorf("Obsoletes = %v", r.Obsoletes)
	}
	if len(r.UpdatedBy) != 2 || r.UpdatedBy[0] != "RFC1349" || r.UpdatedBy[1] != "RFC2474" {
		t.Errorf("UpdatedBy = %v", r.UpdatedBy)
	}

	// Entry without abstract or relations yields empty fields, not an error.
	r2 := records[1]
	if r2.Abstract != "" || r2.Obsoletes != nil || r2.UpdatedBy != nil {
		t.Errorf("sparse record = %+v, want empty optional fields", r2)
	}
}

func TestReadMalformedXML(t *testing.T) {
	err := Read(strings.NewReader("<rfc-index><rfc-entry>"), func(Record) error { return nil })
	if err == nil {
		t.Fatal("malformed index must fail the run")
	}
}

func TestReadCallbackError(t *testing.T) {
	sentinel := errors.New("stop")
	err := Read(strings.NewReader(sampleIndex), func(Record) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("Read() error = %v, want sentinel", err)
	}
}
