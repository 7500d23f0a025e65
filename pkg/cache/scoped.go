package cache

// ScopedKeyer wraps a Keyer with a prefix for tenant isolation on the
// server, where different users' custom tables need separate cache
// namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TableKey generates a prefixed knowledge table key.
func (k *ScopedKeyer) TableKey(origin string) string {
	return k.prefix + k.inner.TableKey(origin)
}

// RingKey generates a prefixed ring key.
func (k *ScopedKeyer) RingKey(tableHash, ring string, opts RingKeyOpts) string {
	return k.prefix + k.inner.RingKey(tableHash, ring, opts)
}

// WheelKey generates a prefixed wheel key.
func (k *ScopedKeyer) WheelKey(manifestHash string, opts WheelKeyOpts) string {
	return k.prefix + k.inner.WheelKey(manifestHash, opts)
}
