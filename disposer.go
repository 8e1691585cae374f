package kguard

import (
	"github.com/go-kata/kerror"
	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

// disposer represents a one-shot disposal action shared by all guard kinds.
type disposer struct {
	// kind specifies the guard kind for log records.
	kind string
	// action specifies the disposal action; it is cleared once the disposer becomes inactive.
	action Action
	// active specifies whether is the action still pending.
	active    atomic.Bool
	logger    logr.Logger
	onFailure func(err error)
}

func newDisposer(kind string, action Action, o *options) *disposer {
	if action == nil {
		panic(kerror.New(kerror.EInvalid, kind+" guard cannot be created with nil action"))
	}
	d := &disposer{
		kind:      kind,
		action:    action,
		logger:    o.logger,
		onFailure: o.onFailure,
	}
	d.active.Store(true)
	return d
}

// suppress deactivates this disposer without calling the action.
func (d *disposer) suppress() {
	if d.active.CompareAndSwap(true, false) {
		d.action = nil
	}
}

// dispose calls the action if this disposer is still active and deactivates it.
// A failure of the action is reported and returned, never raised.
func (d *disposer) dispose() error {
	if !d.active.CompareAndSwap(true, false) {
		return nil
	}
	action := d.action
	d.action = nil
	err := safeInvoke(action)
	if err != nil {
		// Reporting runs at the teardown boundary too, so it must not raise either.
		_ = kerror.Try(func() error {
			d.logger.Error(err, "disposal action failed", "guard", d.kind)
			if d.onFailure != nil {
				d.onFailure(err)
			}
			return nil
		})
	}
	return err
}

// safeInvoke calls the given action and converts a panic into an error.
func safeInvoke(action Action) error {
	return kerror.Try(func() error {
		action()
		return nil
	})
}
