package observe

import (
	"reflect"
	"sync"

	"github.com/petrijr/vinculo/internal/notify"
)

// Value is a mutable observable cell. Widgets expose their state as Values and
// bindings use them as targets: read with Get, write with Set, watch with
// AddListener.
//
// Set suppresses notifications when the new value equals the stored one
// (reflect.DeepEqual). Bidirectional bindings rely on this: a round-tripped
// write converges instead of ping-ponging between the two sides.
//
// A Value is safe for use from multiple goroutines. Listeners run on the
// goroutine that called Set, after the store, with no internal lock held.
type Value struct {
	mu        sync.Mutex
	v         any
	listeners notify.Hub[func()]
}

// NewValue returns a Value holding initial.
func NewValue(initial any) *Value {
	return &Value{v: initial}
}

// Get returns the current value.
func (v *Value) Get() any {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.v
}

// Set stores next and notifies listeners in registration order.
// Storing a value equal to the current one is a no-op.
func (v *Value) Set(next any) {
	v.mu.Lock()
	if reflect.DeepEqual(v.v, next) {
		v.mu.Unlock()
		return
	}
	v.v = next
	v.mu.Unlock()

	for _, fn := range v.listeners.Snapshot() {
		fn()
	}
}

// AddListener registers an invalidation listener that fires after every
// effective Set. A nil fn yields a no-op handle.
func (v *Value) AddListener(fn func()) Subscription {
	if fn == nil {
		return NoopSubscription()
	}
	return NewSubscription(v.listeners.Add(fn))
}

// Get returns v's current value as a T. The second result is false when the
// stored value is not a T (including when it is nil).
func Get[T any](v *Value) (T, bool) {
	t, ok := v.Get().(T)
	return t, ok
}
