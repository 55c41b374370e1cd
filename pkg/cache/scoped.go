package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several deployments can
// share one Redis instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(recordHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(recordHash, opts)
}

// HoverKey generates a prefixed key for hover result caching.
func (k *ScopedKeyer) HoverKey(recordHash string, opts HoverKeyOpts) string {
	return k.prefix + k.inner.HoverKey(recordHash, opts)
}
