package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"home default", "", filepath.Join(home, ".cache", appName)},
		{"xdg", "/tmp/custom-cache", filepath.Join("/tmp/custom-cache", appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLICacheDirPrefersConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	c := New(io.Discard, LogInfo)

	got, _ := c.cacheDir()
	if want := filepath.Join("/tmp/xdg-cache", appName); got != want {
		t.Errorf("cacheDir() = %q, want %q", got, want)
	}

	c.Config.Cache.Dir = "/srv/sunburst-cache"
	if got, _ := c.cacheDir(); got != "/srv/sunburst-cache" {
		t.Errorf("cacheDir() = %q, want configured dir", got)
	}
}
