package locator

// Typed wrappers over the Registry methods. Each derives the capability
// identity from the interface type parameter, so retrieval stays
// compile-time safe: Get[AudioSystem] returns an AudioSystem, never an any.

// Register binds instance as the implementation of the interface type T.
func Register[T any](r *Registry, instance T) error {
	c, err := For[T]()
	if err != nil {
		return err
	}
	return r.Register(c, instance)
}

// Get returns the service registered for the interface type T.
func Get[T any](r *Registry) (T, error) {
	var zero T
	c, err := For[T]()
	if err != nil {
		return zero, err
	}
	v, err := r.Get(c)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MustGet is like Get but panics when the service is missing. Useful where a
// required ambient dependency being absent is unrecoverable.
func MustGet[T any](r *Registry) T {
	v, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a service is registered for the interface type T.
// It returns false when T is not a valid capability type.
func Has[T any](r *Registry) bool {
	c, err := For[T]()
	if err != nil {
		return false
	}
	return r.Has(c)
}

// Unregister removes the service registered for the interface type T and
// reports whether an entry was actually removed.
func Unregister[T any](r *Registry) bool {
	c, err := For[T]()
	if err != nil {
		return false
	}
	return r.Unregister(c)
}

// Replace atomically swaps the service registered for the interface type T.
func Replace[T any](r *Registry, instance T) error {
	c, err := For[T]()
	if err != nil {
		return err
	}
	return r.Replace(c, instance)
}
