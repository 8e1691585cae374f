package kguard_test

import (
	"errors"
	"fmt"

	"github.com/go-kata/kguard"
)

func ExampleNewScopeGuard() {
	open := func(fail bool) (int, error) {
		g := kguard.NewScopeGuard(func() {
			fmt.Println("handle closed")
		})
		defer g.Finalize()
		if fail {
			return 0, errors.New("setup failed")
		}
		g.Release()
		return 42, nil
	}
	h, _ := open(false)
	fmt.Println(h)
	_, err := open(true)
	fmt.Println(err)
	// Output:
	// 42
	// handle closed
	// setup failed
}

func ExampleScope() {
	_ = kguard.Scope(func() {
		fmt.Println("disposed")
	}, func(g *kguard.ScopeGuard) error {
		fmt.Println("working")
		return nil
	})
	// Output:
	// working
	// disposed
}

func ExampleRefGuard() {
	g := kguard.NewRefGuard(func() {
		fmt.Println("disposed")
	})
	g.IncRef()
	_ = g.DecRef()
	fmt.Println("still held:", g.RefCount())
	_ = g.DecRef()
	// Output:
	// still held: 1
	// disposed
}
