package viewstate

import (
	"sync/atomic"
)

// Holder keeps the current state of one screen. Every write replaces the
// whole snapshot, so the last write wins and readers never see a partial
// update. After Close the screen is gone and writes are dropped.
type Holder[T any] struct {
	current atomic.Pointer[State[T]]
	closed  atomic.Bool
}

// NewHolder returns a holder in the loading state.
func NewHolder[T any]() *Holder[T] {
	h := &Holder[T]{}
	loading := Loading[T]()
	h.current.Store(&loading)
	return h
}

func (h *Holder[T]) Get() State[T] {
	if s := h.current.Load(); s != nil {
		return *s
	}
	return Loading[T]()
}

// Set replaces the snapshot. It reports false when the holder is closed
// and the write was dropped.
func (h *Holder[T]) Set(state State[T]) bool {
	if h.closed.Load() {
		return false
	}
	h.current.Store(&state)
	return true
}

// Update derives a new snapshot from the current one. A concurrent write
// between the read and the store is overwritten.
func (h *Holder[T]) Update(fn func(State[T]) State[T]) bool {
	return h.Set(fn(h.Get()))
}

func (h *Holder[T]) Close() {
	h.closed.Store(true)
}

func (h *Holder[T]) Closed() bool {
	return h.closed.Load()
}
