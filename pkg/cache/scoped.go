package cache

// ScopedKeyer wraps a Keyer with a prefix so independent deployments or
// tenants sharing one backend get separate namespaces.
//
// Example:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "team-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DocumentKey generates a prefixed key for rendered documents.
func (k *ScopedKeyer) DocumentKey(graphHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(graphHash, opts)
}

// PreviewKey generates a prefixed key for preview images.
func (k *ScopedKeyer) PreviewKey(graphHash string, opts PreviewKeyOpts) string {
	return k.prefix + k.inner.PreviewKey(graphHash, opts)
}
