// Package cite extracts RFC citations from unstructured document text.
//
// Extraction is deliberately precision-biased: only citations inside
// bracketed blocks are captured. Grouped bibliographic references like
// "[RFC1234, RFC 2345]" match; a free-floating "RFC 793" in prose does
// not, which avoids over-linking the graph.
//
// Matching is a two-stage pattern pass:
//
//  1. Find single-line bracket spans "[...]" whose contents include at
//     least one case-insensitive "RFC" token followed by digits. Bracket
//     spans without such a token are ignored entirely.
//  2. Within each matched span, extract every "RFC" + optional whitespace
//     + 1 to 4 digit token. Longer digit runs are not RFC numbers and
//     never match.
//
// Nested or multi-line bracket spans are not handled; this mirrors the
// precision/recall tradeoff of the index data this tool was built against.
package cite

import (
	"regexp"
	"strconv"

	"github.com/mboehme/rfsee/pkg/catalog"
)

var (
	// Bracket spans that contain at least one RFC-looking token.
	bracketWithRFC = regexp.MustCompile(`(?i)\[([^\]]*\bRFC\s*[0-9][^\]]*)\]`)

	// RFC token: "RFC" + optional whitespace + 1..4 digits.
	rfcToken = regexp.MustCompile(`(?i)\bRFC\s*([0-9]{1,4})\b`)
)

// Extract returns the RFCs cited by text, as canonical identifiers in
// first-appearance order across the whole document, without duplicates.
// The document's own identifier self is excluded regardless of how it is
// cased or padded in the text.
//
// Extraction cannot fail: text with no bracketed citations yields an
// empty result.
func Extract(text string, self catalog.EntryID) []catalog.EntryID {
	var results []catalog.EntryID
	seen := map[catalog.EntryID]bool{self: true}

	for _, span := range bracketWithRFC.FindAllStringSubmatch(text, -1) {
		for _, tok := range rfcToken.FindAllStringSubmatch(span[1], -1) {
			n, err := strconv.Atoi(tok[1])
			if err != nil {
				continue
			}
			id := catalog.CanonicalID(n)
			if !seen[id] {
				seen[id] = true
				results = append(results, id)
			}
		}
	}

	return results
}
