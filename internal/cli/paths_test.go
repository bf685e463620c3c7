package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mboehme/rfsee/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(tmp, appName) {
		t.Errorf("cacheDir() = %q, want %q", dir, filepath.Join(tmp, appName))
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c, err := newCache(true, "")
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("disabled cache should be a NullCache, got %T", c)
	}
}

func TestNewCacheExplicitDir(t *testing.T) {
	dir := t.TempDir()
	c, err := newCache(false, dir)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("expected a FileCache, got %T", c)
	}
}
