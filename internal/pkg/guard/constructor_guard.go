// Package guard provides the ConstructorGuard pattern used by commands and
// queries to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects are only created through their
// designated constructor functions. A zero-value struct carries a zero-value
// guard, which fails Validate; a struct built via its constructor carries a
// constructed guard, which passes.
//
// Example usage:
//
//	type SubmitSketchCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSubmitSketchCommand(orderID kernel.UUID) (SubmitSketchCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return SubmitSketchCommand{}, err
//	    }
//	    return SubmitSketchCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitSketchCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitSketchCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is passed.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
