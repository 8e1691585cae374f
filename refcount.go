package kguard

import (
	"github.com/go-kata/kerror"
	"go.uber.org/atomic"
)

// RefGuard represents a guard bound to a reference count.
//
// The action is called when the last owner drops its reference,
// on whichever goroutine that happens. Owners share the same *RefGuard:
// there is no way to duplicate a guard.
//
// RefGuard must not be copied.
type RefGuard struct {
	_ noCopy
	// self specifies the address this guard was created at.
	self *RefGuard
	// refs specifies the number of owners.
	refs      atomic.Int32
	d         *disposer
	propagate bool
}

// NewRefGuard returns a new active guard for the given action owned by the caller.
//
// Passing nil action is a programmer error, so this function panics in that case.
func NewRefGuard(action Action, opts ...Option) *RefGuard {
	o := newOptions(opts)
	g := &RefGuard{d: newDisposer("refcount", action, o), propagate: o.propagate}
	g.self = g
	g.refs.Store(1)
	return g
}

// IncRef registers one more owner of this guard.
func (g *RefGuard) IncRef() {
	g.check()
	for {
		n := g.refs.Load()
		if n <= 0 {
			panic(kerror.New(kerror.EIllegal, "reference guard has already been torn down"))
		}
		if g.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// DecRef drops one reference to this guard. Dropping the last reference
// calls the action if this guard was not released yet.
//
// A failure of the action is swallowed unless the guard was created WithPropagation,
// in which case it is returned to the caller that dropped the last reference.
func (g *RefGuard) DecRef() error {
	g.check()
	for {
		n := g.refs.Load()
		if n <= 0 {
			panic(kerror.New(kerror.EIllegal, "reference guard was over-released"))
		}
		if g.refs.CompareAndSwap(n, n-1) {
			if n > 1 {
				return nil
			}
			break
		}
	}
	if err := g.d.dispose(); err != nil && g.propagate {
		return err
	}
	return nil
}

// ReleaseGuard releases this guard from the responsibility for calling the action.
//
// Call it when the resource was disposed manually.
func (g *RefGuard) ReleaseGuard() {
	g.check()
	g.d.suppress()
}

// RefCount returns the current number of owners.
func (g *RefGuard) RefCount() int32 {
	g.check()
	return g.refs.Load()
}

// Active returns whether is the action still pending.
func (g *RefGuard) Active() bool {
	g.check()
	return g.d.active.Load()
}

func (g *RefGuard) check() {
	if g == nil {
		kerror.NPE()
		return
	}
	if g.self == nil {
		panic(kerror.New(kerror.EIllegal, "reference guard was not created by NewRefGuard"))
	}
	if g.self != g {
		panic(kerror.New(kerror.EIllegal, "reference guard was copied"))
	}
}
