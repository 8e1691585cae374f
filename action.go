// Package kguard provides guards that run a single disposal action exactly once,
// either when the owning scope ends or when the last reference to the guard is dropped.
package kguard

import "io"

// Action represents a disposal action wrapped by a guard.
//
// A failing action reports its failure by panicking.
type Action func()

// Noop specifies the action that does nothing.
var Noop = Action(func() {})

// FromError returns an action that calls the given function
// and panics with the error it returns, if any.
func FromError(f func() error) Action {
	if f == nil {
		return nil
	}
	return func() {
		if err := f(); err != nil {
			panic(err)
		}
	}
}

// FromCloser is a variant of the FromError that closes the given closer.
func FromCloser(c io.Closer) Action {
	if c == nil {
		return nil
	}
	return FromError(c.Close)
}
