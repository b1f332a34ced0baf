// Package guard provides ConstructorGuard, which lets value objects and
// aggregates tell a constructed instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain types that must only be created through
// their constructors. The zero value reports "not constructed".
//
// Example:
//
//	type TrackingID struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (t TrackingID) Validate() error {
//	    return t.guard.Validate(ErrTrackingIDIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as built by its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
