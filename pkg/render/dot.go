// Package render turns relationship bundles into browsable output: a
// Graphviz DOT description and an SVG per entry, an HTML detail page per
// entry, and a global search index page.
//
// The package is a pure consumer of the catalog: it resolves titles and
// abstracts through the store but never mutates it. All relationship logic
// lives upstream in the pipeline; this layer only formats.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mboehme/rfsee/pkg/catalog"
)

// DefaultTitleWidth is the word-wrap width for titles in node labels.
const DefaultTitleWidth = 40

// DotOptions configures DOT emission.
type DotOptions struct {
	// TitleWidth is the word-wrap width for titles in node labels.
	// Zero means DefaultTitleWidth.
	TitleWidth int
}

// relation group node keys and display attributes. Obsolete/cite groups
// are lightblue, update groups lightyellow, matching the palette the site
// has always used.
var groups = []struct {
	key   string
	label string
	fill  string
	// outgoing groups take an edge from the self node and fan out to the
	// related entries; incoming groups collect edges from the related
	// entries and point at the self node.
	outgoing bool
	pick     func(catalog.Bundle) []catalog.EntryID
}{
	{"obs", "obsoletes", "lightblue", true, func(b catalog.Bundle) []catalog.EntryID { return b.Obsoletes }},
	{"obs_by", "obsoleted by", "lightblue", false, func(b catalog.Bundle) []catalog.EntryID { return b.ObsoletedBy }},
	{"upd", "updates", "lightyellow", true, func(b catalog.Bundle) []catalog.EntryID { return b.Updates }},
	{"upd_by", "updated by", "lightyellow", false, func(b catalog.Bundle) []catalog.EntryID { return b.UpdatedBy }},
	{"cites", "cites", "lightblue", true, func(b catalog.Bundle) []catalog.EntryID { return b.Citations }},
	{"cited_by", "cited by", "lightblue", false, func(b catalog.Bundle) []catalog.EntryID { return b.ReverseCitations }},
}

// ToDOT converts one entry's relationship bundle to a Graphviz DOT radial
// graph: the entry at the center, six relation-group box nodes around it,
// and one ellipse per related entry linking to that entry's page.
//
// Titles are resolved through the store; stub entries simply render with
// an empty title line. The output is deterministic for a given bundle.
func ToDOT(b catalog.Bundle, store *catalog.Store, opts DotOptions) string {
	width := opts.TitleWidth
	if width <= 0 {
		width = DefaultTitleWidth
	}

	self := b.Self.ID
	var buf bytes.Buffer
	buf.WriteString("digraph Flow {\n")
	buf.WriteString("  layout=twopi;\n")
	fmt.Fprintf(&buf, "  root=%q;\n", self)
	buf.WriteString("  overlap=false;\n")
	fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, style=filled, fillcolor=green, tooltip=%q, fontsize=18, penwidth=3];\n",
		self, nodeLabel(b.Self, width), tooltip(b.Self))

	for _, g := range groups {
		ids := g.pick(b)
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  %s [label=%q, shape=box, style=filled, fillcolor=%s];\n", g.key, g.label, g.fill)
		if g.outgoing {
			fmt.Fprintf(&buf, "  %q -> %s;\n", self, g.key)
		} else {
			fmt.Fprintf(&buf, "  %s -> %q;\n", g.key, self)
		}
		for _, id := range ids {
			writeRelated(&buf, store, id, width)
			if g.outgoing {
				fmt.Fprintf(&buf, "  %s -> %q;\n", g.key, id)
			} else {
				fmt.Fprintf(&buf, "  %q -> %s;\n", id, g.key)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeRelated emits the node statement for a related entry. An entry
// related through several groups is emitted once per group; Graphviz
// merges repeated node statements.
func writeRelated(buf *bytes.Buffer, store *catalog.Store, id catalog.EntryID, width int) {
	e := store.Get(id)
	if e == nil {
		e = &catalog.Entry{ID: id}
	}
	fmt.Fprintf(buf, "  %q [label=%q, shape=ellipse, URL=%q, target=\"_top\", tooltip=%q];\n",
		id, nodeLabel(e, width), string(id)+".html", tooltip(e))
}

// nodeLabel builds the multi-line node label: identifier, wrapped title,
// and publication year when known.
func nodeLabel(e *catalog.Entry, width int) string {
	lines := []string{string(e.ID)}
	lines = append(lines, wrapText(stripQuotes(e.Title), width)...)
	if e.Year != "" {
		lines = append(lines, e.Year)
	}
	return strings.Join(lines, "\n")
}

// tooltip returns the abstract with double quotes removed, or the bare
// identifier for entries without one.
func tooltip(e *catalog.Entry) string {
	if e.Abstract == "" {
		return string(e.ID)
	}
	return stripQuotes(e.Abstract)
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
