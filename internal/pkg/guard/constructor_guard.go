// Package guard provides a defensive construction marker for value objects.
//
// Commands, queries and value objects embed a ConstructorGuard so a zero
// value, created by bypassing the designated constructor, can be detected
// before any business logic runs on it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied and the object was not constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, so directly instantiated structs are
// rejected wherever Validate is called.
//
// Example:
//
//	var ErrShipmentViewNotConstructed = errors.New("ShipmentView must be created via NewShipmentView")
//
//	type ShipmentView struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShipmentView(id kernel.UUID) ShipmentView {
//	    return ShipmentView{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (v ShipmentView) Validate() error {
//	    return v.guard.Validate(ErrShipmentViewNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was built through its
// constructor, the supplied validationError otherwise. A nil
// validationError falls back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
