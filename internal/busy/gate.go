// Package busy guards single in-flight operations such as bio generation
// and card export.
package busy

import (
	"errors"
	"sync/atomic"
)

// ErrBusy is returned when an operation is already in flight.
var ErrBusy = errors.New("operation already in progress")

// Gate admits one holder at a time. The zero value is ready to use.
type Gate struct {
	held atomic.Bool
}

// TryAcquire takes the gate, reporting false when it is already held.
func (g *Gate) TryAcquire() bool {
	return g.held.CompareAndSwap(false, true)
}

// Release frees the gate.
func (g *Gate) Release() {
	g.held.Store(false)
}

// Busy reports whether the gate is held.
func (g *Gate) Busy() bool {
	return g.held.Load()
}

// Do runs fn while holding the gate and always releases it afterwards.
// A concurrent call returns ErrBusy without running fn.
func (g *Gate) Do(fn func() error) error {
	if !g.TryAcquire() {
		return ErrBusy
	}
	defer g.Release()
	return fn()
}
