//go:build !go1.24

package kguard

import "runtime"

func addCleanup[T, S any](ptr *T, cleanup func(S), arg S) {
	runtime.SetFinalizer(ptr, func(*T) {
		cleanup(arg)
	})
}
