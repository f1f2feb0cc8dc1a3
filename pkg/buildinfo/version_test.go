package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestCacheScope(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "dev", "abc"
	if got := CacheScope(); got != "dev:abc:" {
		t.Errorf("CacheScope() = %q", got)
	}
	Version = "v1.2.3"
	if got := CacheScope(); got != "v1.2.3:" {
		t.Errorf("CacheScope() = %q", got)
	}
}
