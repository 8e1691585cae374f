package kguard

import "github.com/go-kata/kerror"

// CollectedGuard represents a guard bound to the reachability of the guard itself.
//
// The action is called on the runtime cleanup goroutine at some point
// after the guard becomes unreachable, or never if the program exits first.
// Failures of the action are always swallowed.
//
// CollectedGuard must not be copied. Unlike other guards, a copy is not detected:
// it shares the disposer of the original, so the action is called once the original
// becomes unreachable even if the copy is still in use.
type CollectedGuard struct {
	_ noCopy
	d *disposer
}

// NewCollectedGuard returns a new active guard for the given action.
//
// Passing nil action is a programmer error, so this function panics in that case.
func NewCollectedGuard(action Action, opts ...Option) *CollectedGuard {
	g := &CollectedGuard{d: newDisposer("collected", action, newOptions(opts))}
	// The cleanup must not reach g, otherwise g is never collected.
	addCleanup(g, collect, g.d)
	return g
}

// ReleaseGuard releases this guard from the responsibility for calling the action.
//
// It may be called concurrently with the collector.
func (g *CollectedGuard) ReleaseGuard() {
	g.check()
	g.d.suppress()
}

// Active returns whether is the action still pending.
func (g *CollectedGuard) Active() bool {
	g.check()
	return g.d.active.Load()
}

func (g *CollectedGuard) check() {
	if g == nil {
		kerror.NPE()
		return
	}
	if g.d == nil {
		panic(kerror.New(kerror.EIllegal, "collected guard was not created by NewCollectedGuard"))
	}
}

func collect(d *disposer) {
	_ = d.dispose()
}
