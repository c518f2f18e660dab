// Package notify provides the listener registration machinery shared by the
// observable value, model property, and widget action implementations.
package notify

import "sync"

// Hub keeps an ordered collection of callbacks of type T.
//
// The zero value is ready to use. Callbacks are dispatched by the owner in
// registration order; Hub itself never invokes them. Snapshot-based dispatch
// means a callback may add or remove registrations re-entrantly without
// corrupting the iteration in progress.
type Hub[T any] struct {
	mu      sync.Mutex
	nextID  int
	entries []entry[T]
}

type entry[T any] struct {
	id int
	fn T
}

// Add registers fn and returns a removal func. The removal func is idempotent.
func (h *Hub[T]) Add(fn T) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.entries = append(h.entries, entry[T]{id: id, fn: fn})
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i := range h.entries {
			if h.entries[i].id == id {
				h.entries = append(h.entries[:i], h.entries[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the registered callbacks in registration order.
// Owners dispatch on the copy so no hub lock is held during callback runs.
func (h *Hub[T]) Snapshot() []T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return nil
	}
	out := make([]T, len(h.entries))
	for i := range h.entries {
		out[i] = h.entries[i].fn
	}
	return out
}

// Len reports the number of currently registered callbacks.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
