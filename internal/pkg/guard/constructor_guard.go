// Package guard marks values that were built by their constructor.
//
// Domain value objects and commands embed a ConstructorGuard and call
// Validate before use, so a zero value created with a struct literal is
// rejected instead of silently carrying unvalidated fields.
package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns notConstructedErr (or ErrDefaultConstructorGuard when it is
// nil) for a zero-value guard.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
