package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = "v1.2.3", "abc123", "2025-01-02"

	want := "{{.Name}} v1.2.3 (commit abc123, built 2025-01-02)\n"
	if got := Template(); got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
	if got := String(); !strings.Contains(got, "version: v1.2.3") {
		t.Errorf("String() = %q, want the version line", got)
	}
}

func TestCacheScopeFollowsVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.0.0"
	a := CacheScope()
	Version = "v1.1.0"
	b := CacheScope()
	if a == b {
		t.Errorf("CacheScope() = %q for both releases", a)
	}
	if b != "v1.1.0:" {
		t.Errorf("CacheScope() = %q, want v1.1.0:", b)
	}
}
