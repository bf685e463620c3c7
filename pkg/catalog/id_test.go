package catalog

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    EntryID
		wantErr bool
	}{
		{"canonical", "RFC7", "RFC7", false},
		{"leading zeros", "RFC0007", "RFC7", false},
		{"lowercase", "rfc793", "RFC793", false},
		{"mixed case", "Rfc2119", "RFC2119", false},
		{"inner whitespace", "RFC 42", "RFC42", false},
		{"padded whitespace", "  rfc 0042  ", "RFC42", false},
		{"bare number", "821", "RFC821", false},
		{"four digits", "RFC9110", "RFC9110", false},
		{"zero", "RFC0", "RFC0", false},

		{"empty", "", "", true},
		{"prefix only", "RFC", "", true},
		{"five digits", "RFC12345", "", true},
		{"not a number", "RFCabc", "", true},
		{"negative", "RFC-7", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("ParseID(%q) error = %v, want ErrInvalidID", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEntryIDNumber(t *testing.T) {
	if got := EntryID("RFC9110").Number(); got != 9110 {
		t.Errorf("Number() = %d, want 9110", got)
	}
}

func TestCanonicalID(t *testing.T) {
	if got := CanonicalID(7); got != "RFC7" {
		t.Errorf("CanonicalID(7) = %q, want RFC7", got)
	}
}
