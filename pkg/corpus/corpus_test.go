package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mboehme/rfsee/pkg/catalog"
)

func TestDirPaddingVariants(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("rfc7.txt", "unpadded seven")
	write("rfc0042.txt", "padded forty-two")

	src := NewDir(dir)

	tests := []struct {
		name string
		id   catalog.EntryID
		want string
	}{
		{"unpadded file", "RFC7", "unpadded seven"},
		{"padded file found via variant", "RFC42", "padded forty-two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Text(tt.id)
			if err != nil {
				t.Fatalf("Text(%s) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("Text(%s) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestDirNotFound(t *testing.T) {
	src := NewDir(t.TempDir())
	_, err := src.Text("RFC9999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestMapSource(t *testing.T) {
	src := Map{"RFC1": "hello"}
	if got, err := src.Text("RFC1"); err != nil || got != "hello" {
		t.Fatalf("Text(RFC1) = %q, %v", got, err)
	}
	if _, err := src.Text("RFC2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
