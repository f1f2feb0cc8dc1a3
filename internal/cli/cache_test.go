package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(base, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(noCache) error: %v", err)
	}
	if _, ok := c.(interface{ Dir() string }); ok {
		t.Error("--no-cache should give a null cache")
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	fc, ok := c.(interface{ Dir() string })
	if !ok {
		t.Fatalf("newCache() = %T, want a file cache", c)
	}
	if _, err := os.Stat(fc.Dir()); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}
}
