package locator

import "context"

// registryKey is the context key for a carried *Registry.
type registryKey struct{}

// NewContext returns a context carrying r. Passing the registry through an
// explicit context keeps the dependency visible at call sites instead of
// relying on hidden global lookup.
func NewContext(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// FromContext returns the registry carried by ctx, falling back to Default
// when none was attached. It never returns nil.
func FromContext(ctx context.Context) *Registry {
	if r, ok := ctx.Value(registryKey{}).(*Registry); ok && r != nil {
		return r
	}
	return Default
}
