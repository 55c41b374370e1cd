package cache

import "strings"

// Keyer derives cache keys for pipeline outputs.
type Keyer interface {
	// ArtifactKey identifies a rendered artifact of a record.
	ArtifactKey(recordHash string, opts ArtifactKeyOpts) string
	// HoverKey identifies the hover result for a node path of a record.
	HoverKey(recordHash string, opts HoverKeyOpts) string
}

// ArtifactKeyOpts lists every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Hue         string  `json:"hue"`
	Seed        uint64  `json:"seed"`
	Epsilon     float64 `json:"epsilon"`
	Legend      bool    `json:"legend"`
	Trail       bool    `json:"trail"`
	Interactive bool    `json:"interactive,omitempty"`
	Title       string  `json:"title,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Path        string  `json:"path,omitempty"`
}

// HoverKeyOpts lists every option that changes a hover result.
type HoverKeyOpts struct {
	Path    []string `json:"path"`
	Epsilon float64  `json:"epsilon"`
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) ArtifactKey(recordHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+strings.ToLower(opts.Format), recordHash, opts)
}

func (DefaultKeyer) HoverKey(recordHash string, opts HoverKeyOpts) string {
	return hashKey("hover", recordHash, opts)
}
