package kguard

import "github.com/go-kata/kerror"

// ScopeGuard represents a guard bound to a lexical scope.
//
// The usual way to use it:
//
//	g := kguard.NewScopeGuard(func() { C.free(p) })
//	defer g.Finalize()
//	...
//	g.Release() // p was handed over, do not free it
//
// ScopeGuard must not be copied.
type ScopeGuard struct {
	_ noCopy
	// self specifies the address this guard was created at.
	self *ScopeGuard
	d    *disposer
}

// NewScopeGuard returns a new active guard for the given action.
//
// Passing nil action is a programmer error, so this function panics in that case.
func NewScopeGuard(action Action, opts ...Option) *ScopeGuard {
	g := &ScopeGuard{d: newDisposer("scope", action, newOptions(opts))}
	g.self = g
	return g
}

// Release releases this guard from the responsibility for calling the action.
func (g *ScopeGuard) Release() {
	g.check()
	g.d.suppress()
}

// Finalize calls the action if this guard was not released yet.
// It never panics because of the action: a failure is reported to the configured logger
// and failure handler and then dropped.
func (g *ScopeGuard) Finalize() {
	g.check()
	_ = g.d.dispose()
}

// Active returns whether is the action still pending.
func (g *ScopeGuard) Active() bool {
	g.check()
	return g.d.active.Load()
}

func (g *ScopeGuard) check() {
	if g == nil {
		kerror.NPE()
		return
	}
	if g.self == nil {
		panic(kerror.New(kerror.EIllegal, "scope guard was not created by NewScopeGuard"))
	}
	if g.self != g {
		panic(kerror.New(kerror.EIllegal, "scope guard was copied"))
	}
}

// Scope creates a guard for the given action, runs the block with it
// and finalizes the guard however the block exits.
//
// The block error is returned as is. A block panic keeps propagating after the guard was finalized.
func Scope(action Action, block func(g *ScopeGuard) error, opts ...Option) error {
	if block == nil {
		panic(kerror.New(kerror.EInvalid, "scope cannot run nil block"))
	}
	g := NewScopeGuard(action, opts...)
	defer g.Finalize()
	return block(g)
}
