// Package guard provides a defensive construction marker for value objects
// and commands. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a bare zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, so direct struct literals are caught
// before they reach a handler or repository.
//
// Example:
//
//	type WithdrawCommand struct {
//	    party kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWithdrawCommand(party kernel.UUID) (WithdrawCommand, error) {
//	    ...
//	    return WithdrawCommand{party: party, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c WithdrawCommand) Validate() error {
//	    return c.guard.Validate(ErrWithdrawCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor,
// otherwise the supplied validation error (or ErrDefaultConstructorGuard
// when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
