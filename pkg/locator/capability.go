package locator

import (
	"fmt"
	"reflect"
)

// Capability identifies an abstract contract that a registered service
// fulfills. It wraps the reflect.Type of an interface and is comparable, so
// two capabilities derived from the same interface type are equal and usable
// as the same map key.
//
// The zero Capability is invalid; construct one with For, MustFor, or ForType.
type Capability struct {
	typ reflect.Type
}

// For returns the capability identity for the interface type T.
//
// T must be a named interface with at least one method: the registry stores
// services under abstract contracts, never under concrete implementation
// types, and an empty interface carries no contract to look up. Violations
// return an *InvalidArgumentError.
func For[T any]() (Capability, error) {
	return ForType(reflect.TypeOf((*T)(nil)).Elem())
}

// MustFor is like For but panics on a non-capability type.
// Useful in var blocks and init functions where the type is known statically.
func MustFor[T any]() Capability {
	c, err := For[T]()
	if err != nil {
		panic(err)
	}
	return c
}

// ForType builds a capability identity from a reflect.Type, applying the
// same rules as For. Useful when the interface type is only known
// dynamically.
func ForType(typ reflect.Type) (Capability, error) {
	if typ == nil {
		return Capability{}, &InvalidArgumentError{Reason: "nil type"}
	}
	if typ.Kind() != reflect.Interface {
		return Capability{}, &InvalidArgumentError{
			Reason: fmt.Sprintf("%s is not an interface type", typ),
		}
	}
	if typ.NumMethod() == 0 {
		return Capability{}, &InvalidArgumentError{
			Reason: fmt.Sprintf("interface %s declares no methods", typ),
		}
	}
	return Capability{typ: typ}, nil
}

// IsZero reports whether the capability is uninitialized.
func (c Capability) IsZero() bool { return c.typ == nil }

// Name returns the bare interface name, e.g. "AudioSystem".
func (c Capability) Name() string {
	if c.typ == nil {
		return ""
	}
	return c.typ.Name()
}

// String returns the fully qualified capability name,
// e.g. "github.com/acme/app/audio.System".
func (c Capability) String() string {
	switch {
	case c.typ == nil:
		return "<zero capability>"
	case c.typ.PkgPath() == "":
		return c.typ.String()
	default:
		return c.typ.PkgPath() + "." + c.typ.Name()
	}
}

// Type returns the underlying interface type.
func (c Capability) Type() reflect.Type { return c.typ }

// implementedBy reports whether instance satisfies the capability's contract.
func (c Capability) implementedBy(instance any) bool {
	if instance == nil || c.typ == nil {
		return false
	}
	return reflect.TypeOf(instance).Implements(c.typ)
}
