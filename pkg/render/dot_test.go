package render

import (
	"strings"
	"testing"

	"github.com/mboehme/rfsee/pkg/catalog"
)

func testStore() *catalog.Store {
	s := catalog.NewStore()
	self := s.Ensure("RFC791")
	self.Title = `Internet "Protocol"`
	self.Year = "1981"
	self.Abstract = `The "IP" spec.`
	self.Obsoletes = []catalog.EntryID{"RFC760"}
	self.UpdatedBy = []catalog.EntryID{"RFC1349"}
	self.Citations = []catalog.EntryID{"RFC760"}
	self.ReverseCitations = []catalog.EntryID{"RFC793"}

	s.Ensure("RFC760").Title = "DoD standard Internet Protocol"
	s.Ensure("RFC1349")
	s.Ensure("RFC793").Title = "Transmission Control Protocol"
	return s
}

func TestToDOT(t *testing.T) {
	store := testStore()
	dot := ToDOT(catalog.BundleFor(store.Get("RFC791")), store, DotOptions{})

	for _, want := range []string{
		"digraph Flow {",
		"layout=twopi;",
		`root="RFC791";`,
		"fillcolor=green",     // central node styling
		`"RFC791" -> obs;`,    // outgoing: self to group
		`obs -> "RFC760";`,    // group fans out to target
		`upd_by -> "RFC791";`, // incoming: group points at self
		`"RFC1349" -> upd_by;`,
		`"RFC791" -> cites;`,
		`cites -> "RFC760";`,
		`cited_by -> "RFC791";`,
		`"RFC793" -> cited_by;`,
		`URL="RFC760.html"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTGroupNodesAlwaysPresent(t *testing.T) {
	store := catalog.NewStore()
	e := store.Ensure("RFC1")
	dot := ToDOT(catalog.BundleFor(e), store, DotOptions{})

	// All six relation groups appear even when empty.
	for _, key := range []string{"obs ", "obs_by ", "upd ", "upd_by ", "cites ", "cited_by "} {
		if !strings.Contains(dot, "  "+key+"[label=") {
			t.Errorf("DOT missing group node %q\n%s", strings.TrimSpace(key), dot)
		}
	}
}

func TestToDOTStripsQuotes(t *testing.T) {
	store := testStore()
	dot := ToDOT(catalog.BundleFor(store.Get("RFC791")), store, DotOptions{})

	if strings.Contains(dot, `\"IP\"`) || strings.Contains(dot, `\"Protocol\"`) {
		t.Errorf("double quotes must be stripped from titles and abstracts:\n%s", dot)
	}
}

func TestToDOTUnknownRelatedEntry(t *testing.T) {
	store := catalog.NewStore()
	e := store.Ensure("RFC1")
	e.Obsoletes = []catalog.EntryID{"RFC404"} // never Ensure'd

	dot := ToDOT(catalog.BundleFor(e), store, DotOptions{})
	if !strings.Contains(dot, `"RFC404"`) {
		t.Errorf("related entry absent from store must still render:\n%s", dot)
	}
}

func TestToDOTWrapsTitle(t *testing.T) {
	store := catalog.NewStore()
	e := store.Ensure("RFC9999")
	e.Title = "A Very Long Title That Certainly Exceeds Forty Characters In Total Length"

	dot := ToDOT(catalog.BundleFor(e), store, DotOptions{TitleWidth: 40})
	if !strings.Contains(dot, `\n`) {
		t.Errorf("long title should wrap onto multiple label lines:\n%s", dot)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "short title", 40, []string{"short title"}},
		{"wraps", "alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		{"long word", "superlongunbreakableword ok", 5, []string{"superlongunbreakableword", "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
