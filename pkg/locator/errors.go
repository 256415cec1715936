package locator

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. The typed errors below carry
// the offending capability and unwrap to these.
var (
	// ErrInvalidArgument indicates a caller-fixable registration mistake.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateService indicates a register call for a capability that
	// already has an entry.
	ErrDuplicateService = errors.New("service already registered")

	// ErrServiceNotFound indicates a get call for a capability with no entry.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSealed indicates a registration attempt on a sealed registry.
	ErrSealed = errors.New("registry is sealed")
)

// InvalidArgumentError reports a registration the caller must fix: a nil
// instance, an identity that is not an interface type, an instance that does
// not implement the capability, or an identity missing from the configured
// catalog.
type InvalidArgumentError struct {
	Capability Capability // zero when the identity itself was invalid
	Reason     string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Capability.IsZero() {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument for %s: %s", e.Capability, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// DuplicateServiceError reports a register call for a capability that already
// has an entry. The existing entry is left untouched; the caller may
// unregister first, use Replace, or treat this as a logic error to fix at
// the call site.
type DuplicateServiceError struct {
	Capability Capability
}

// Error implements the error interface.
func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("%s already has a registered service", e.Capability)
}

// Unwrap returns ErrDuplicateService.
func (e *DuplicateServiceError) Unwrap() error { return ErrDuplicateService }

// NotFoundError reports a get call for a capability with no entry. The
// caller decides severity: a missing required ambient dependency may be
// fatal, while other callers fall back to a default of their own.
type NotFoundError struct {
	Capability Capability
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no service registered for %s", e.Capability)
}

// Unwrap returns ErrServiceNotFound.
func (e *NotFoundError) Unwrap() error { return ErrServiceNotFound }
