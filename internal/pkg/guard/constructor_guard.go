// Package guard provides ConstructorGuard, a marker embedded in value objects and
// entities to tell instances built through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning object went through its constructor.
//
// Embed it in a struct, set it with NewConstructorGuard in the constructor and
// call Validate from the owner's Validate method:
//
//	var ErrPriceNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
