// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands so that zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was built by its constructor.
//
// Example usage:
//
//	var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    itemType ItemType
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewLineItem(itemType ItemType, quantity int) (LineItem, error) {
//	    // validate ...
//	    return LineItem{itemType: itemType, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l LineItem) Validate() error {
//	    return l.guard.Validate(ErrLineItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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
