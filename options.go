package kguard

import "github.com/go-logr/logr"

// Option represents a guard option.
type Option func(*options)

// options specifies settings shared by all guard kinds.
type options struct {
	// logger specifies the logger that receives swallowed disposal failures.
	logger logr.Logger
	// onFailure specifies a function to be called with a recovered disposal failure.
	onFailure func(err error)
	// propagate specifies whether should the RefGuard return disposal failures from the DecRef.
	propagate bool
}

func newOptions(opts []Option) *options {
	o := &options{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger sets the logger that receives an error record each time a disposal action fails.
//
// Guards are silent by default.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFailureHandler sets a function to be called with the error recovered from a failed disposal action.
//
// The handler is called on the goroutine that triggered disposal.
// A panic raised by the handler is dropped.
func WithFailureHandler(h func(err error)) Option {
	return func(o *options) {
		o.onFailure = h
	}
}

// WithPropagation makes the RefGuard return disposal failures from the final DecRef
// instead of swallowing them. Other guards ignore this option.
func WithPropagation() Option {
	return func(o *options) {
		o.propagate = true
	}
}
