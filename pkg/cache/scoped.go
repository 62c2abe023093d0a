package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share a
// Redis instance without reading each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer prefixes every key of inner, or of [DefaultKeyer] when
// inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner, prefix}
}

func (k *ScopedKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(chartHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(chartHash string, layout LayoutKeyOpts, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(chartHash, layout, opts)
}
