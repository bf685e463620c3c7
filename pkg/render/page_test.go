package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mboehme/rfsee/pkg/catalog"
)

func TestWriteDetailPage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDetailPage(&buf, "RFC793", "Transmission Control Protocol"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`data="RFC793.svg"`,
		`href="index.html"`,
		"Transmission Control Protocol",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestWriteDetailPageStubTitle(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDetailPage(&buf, "RFC404", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<h3>RFC404 (click nodes)</h3>") {
		t.Errorf("stub page should omit the title separator:\n%s", buf.String())
	}
}

func TestWriteIndexPage(t *testing.T) {
	items := []catalog.ListingItem{
		{ID: "RFC1", Title: "Host Software"},
		{ID: "RFC2", Title: ""},
	}

	var buf bytes.Buffer
	if err := WriteIndexPage(&buf, items); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`<h4 id="RFC1">RFC1 -- Host Software</h4>`,
		`href="RFC1.html"`,
		`<h4 id="RFC2">RFC2 -- </h4>`, // stubs keep their row
		`id="search"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index page missing %q", want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="134pt" height="116pt" viewBox="0.00 0.00 134.00 116.00" xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 134.00 116.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="134" height="116"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}

	// SVG without a viewBox passes through untouched.
	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("svg without viewBox should be unchanged, got %s", got)
	}
}
