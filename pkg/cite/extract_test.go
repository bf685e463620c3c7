package cite

import (
	"testing"

	"github.com/mboehme/rfsee/pkg/catalog"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		self catalog.EntryID
		want []catalog.EntryID
	}{
		{
			name: "unbracketed mentions are excluded",
			text: "See [RFC1234] and RFC 5678 unbracketed.",
			self: "RFC1",
			want: []catalog.EntryID{"RFC1234"},
		},
		{
			name: "normalization and order",
			text: "[RFC0007, rfc 42]",
			self: "RFC1",
			want: []catalog.EntryID{"RFC7", "RFC42"},
		},
		{
			name: "grouped citations",
			text: "as defined in [RFC1234, RFC 2345, rfc3456]",
			self: "RFC1",
			want: []catalog.EntryID{"RFC1234", "RFC2345", "RFC3456"},
		},
		{
			name: "bracket with unrelated text still matches",
			text: "details in [RFC1234, page 12] below",
			self: "RFC1",
			want: []catalog.EntryID{"RFC1234"},
		},
		{
			name: "bracket without RFC token is ignored",
			text: "see [section 4.2] and [TCP] for details",
			self: "RFC1",
			want: nil,
		},
		{
			name: "self id excluded regardless of casing and padding",
			text: "[rfc 0793] obsoletes [RFC761]",
			self: "RFC793",
			want: []catalog.EntryID{"RFC761"},
		},
		{
			name: "duplicates collapse to first appearance across brackets",
			text: "[RFC2119] then [RFC8174, RFC2119] then [rfc 2119]",
			self: "RFC1",
			want: []catalog.EntryID{"RFC2119", "RFC8174"},
		},
		{
			name: "five digit runs are not RFC numbers",
			text: "[RFC12345] but [RFC1234] is fine",
			self: "RFC1",
			want: []catalog.EntryID{"RFC1234"},
		},
		{
			name: "empty text",
			text: "",
			self: "RFC1",
			want: nil,
		},
		{
			name: "no citations at all",
			text: "This document has no references section.",
			self: "RFC1",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.self)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Extract()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
