// Package buildinfo holds the version stamped into the sunburst binary.
//
// The values are injected with ldflags at release time:
//
//	go build -ldflags "-X github.com/matzehuels/sunburst/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/sunburst/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/sunburst/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The version also scopes cache keys, so charts cached by one release are
// never served by another.
package buildinfo

import "fmt"

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// CacheScope returns the prefix that isolates cache entries of this build.
func CacheScope() string {
	return Version + ":"
}
