package cache

// ScopedKeyer wraps a Keyer with a prefix so several users of one shared
// backend get separate namespaces.
//
// Example usage:
//
//	// Per-team keys on a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "team:design:")
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

// EncodeKey generates a prefixed key for encode results.
func (k *ScopedKeyer) EncodeKey(networkHash string) string {
	return k.prefix + k.inner.EncodeKey(networkHash)
}

// DecodeKey generates a prefixed key for decode results.
func (k *ScopedKeyer) DecodeKey(sparseHash string) string {
	return k.prefix + k.inner.DecodeKey(sparseHash)
}
