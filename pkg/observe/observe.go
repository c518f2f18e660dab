// Package observe provides the observable building blocks used on the UI side
// of a binding: a mutable Value cell with invalidation listeners, and the
// Subscription handle handed out by every listener registration in this module.
package observe

import "sync"

// Subscription detaches a previously registered listener.
//
// Implementations returned by this module are idempotent: calling Unsubscribe
// more than once is safe and only the first call has an effect.
type Subscription interface {
	Unsubscribe()
}

type subscription struct {
	once sync.Once
	f    func()
}

func (s *subscription) Unsubscribe() { s.once.Do(s.f) }

// NewSubscription wraps f into an idempotent Subscription.
// A nil f yields a no-op handle.
func NewSubscription(f func()) Subscription {
	if f == nil {
		return NoopSubscription()
	}
	return &subscription{f: f}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

// NoopSubscription returns a Subscription that does nothing.
// It is used where a direction of a binding has nothing to tear down.
func NoopSubscription() Subscription { return noopSubscription{} }

// CombineSubscriptions composes subs into a single handle that unsubscribes
// each non-nil entry in order. Nil entries are skipped; zero usable entries
// collapse to a no-op and a single entry is returned as-is.
func CombineSubscriptions(subs ...Subscription) Subscription {
	filtered := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return NoopSubscription()
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return NewSubscription(func() {
		for _, s := range filtered {
			s.Unsubscribe()
		}
	})
}
