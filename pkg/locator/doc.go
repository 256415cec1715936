// Package locator provides a process-wide, concurrency-safe service registry
// keyed by capability: an abstract contract expressed as a Go interface type.
//
// Independently written modules register one concrete implementation per
// capability during startup and resolve it later at point of use, without
// knowing the concrete type or how it was constructed. The registry is a
// lookup mechanism, not a dependency-injection container: it never
// constructs services, never resolves constructor graphs, and owns a
// service's lifecycle only to the extent of a best-effort disposal hook on
// explicit removal.
//
// # Basic Usage
//
// Declare a capability as an interface, register an implementation, and
// resolve it by type:
//
//	type AudioSystem interface {
//	    Play(clip string) error
//	}
//
//	reg := locator.New()
//	if err := locator.Register[AudioSystem](reg, openALBackend{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	audio, err := locator.Get[AudioSystem](reg)
//	if err != nil {
//	    // No AudioSystem was registered; the caller decides severity.
//	}
//	audio.Play("startup.wav")
//
// Registration is strict: a second Register for the same capability returns
// a *DuplicateServiceError and leaves the first binding untouched, so
// accidental double-registration surfaces early instead of being masked.
// Use Replace for an atomic swap, or Unregister followed by Register.
//
// # Capability Identities
//
// A Capability is derived from an interface type and only from an interface
// type: registering under a concrete type is rejected, which keeps callers
// decoupled from implementations. Interfaces with no methods carry no
// contract and are rejected as well.
//
// # Concurrency
//
// All operations are safe for concurrent use from any goroutine. A Register
// that returns nil happens-before every later Get or Has on any goroutine.
// Disposal hooks and change notifications run outside the internal lock, so
// a slow teardown never stalls unrelated lookups.
//
// # Lifecycle
//
// A Registry starts empty and needs no teardown beyond Close, which removes
// and disposes every remaining service. The package-level Default registry
// covers the common single-registry process; prefer passing an explicit
// *Registry (or carrying one via NewContext/FromContext) so dependencies
// stay visible at call sites.
package locator
