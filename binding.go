package vinculo

import (
	"fmt"

	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/petrijr/vinculo/pkg/vmodel"
)

// Binding is a live link between a model property and a target value. It is
// created active by FXBinder.Bind: both listener registrations are installed
// and the initial value has already been pushed model -> target.
//
// A Binding owns its two listener registrations for its lifetime. Teardown
// goes through Unbind or the combined Subscription; both are idempotent.
type Binding struct {
	src      vmodel.Property
	dst      *observe.Value
	observer Observer
	sub      observe.Subscription
}

func newBinding(cfg *FXBinder) *Binding {
	b := &Binding{
		src:      cfg.src,
		dst:      cfg.dst,
		observer: cfg.observer,
	}

	// Forward first, so the initial push cannot bounce off a backward
	// listener that is not wired yet.
	forward := b.installForward(cfg)
	backward := b.installBackward(cfg)

	both := observe.CombineSubscriptions(forward, backward)
	b.sub = observe.NewSubscription(func() {
		both.Unsubscribe()
		b.observer.OnUnbind(b)
	})

	b.observer.OnBind(b)
	return b
}

// installForward registers the model -> target listener and invokes it once
// synchronously to push the initial value.
func (b *Binding) installForward(cfg *FXBinder) observe.Subscription {
	syncForward := func() {
		v, err := cfg.forward(b.src, b.dst)
		if err != nil {
			b.syncFailed(DirectionForward, cfg.forwardErr, err)
			return
		}
		b.dst.Set(v)
		b.observer.OnForwardSync(b, v)
	}

	sub := b.src.AddChangeListener(func(vmodel.Change) { syncForward() })
	syncForward()
	return sub
}

// installBackward wires the target -> model direction per the back-sync
// policy.
func (b *Binding) installBackward(cfg *FXBinder) observe.Subscription {
	policy := cfg.policy
	if policy.kind == backSyncNone {
		return observe.NoopSubscription()
	}

	syncBack := func() {
		v, err := policy.backward(b.dst, b.src)
		if err == nil {
			err = b.src.Set(v)
		}
		if err != nil {
			b.syncFailed(DirectionBackward, cfg.backErr, err)
			return
		}
		b.observer.OnBackSync(b, v)
	}

	switch policy.kind {
	case backSyncOnAction:
		return policy.source.AddActionListener(syncBack)
	case backSyncWhen:
		return b.dst.AddListener(func() {
			if policy.pred(b.dst.Get()) {
				syncBack()
			}
		})
	default:
		return b.dst.AddListener(syncBack)
	}
}

// syncFailed routes a sync error to the direction's handler, or escalates it
// as a runtime fault on the goroutine that triggered the sync.
func (b *Binding) syncFailed(dir Direction, handler ErrorHandler, err error) {
	b.observer.OnSyncError(b, dir, err)
	if handler != nil {
		handler(b.src, b.dst, err)
		return
	}
	panic(fmt.Errorf("vinculo: binding broken: %w", err))
}

// Source returns the model side of the binding.
func (b *Binding) Source() vmodel.Property {
	return b.src
}

// Target returns the target side of the binding.
func (b *Binding) Target() *observe.Value {
	return b.dst
}

// Subscription returns the handle composing both directions' teardown.
// Unsubscribe detaches the forward change listener and whichever backward
// registration the policy installed, and is idempotent.
func (b *Binding) Subscription() observe.Subscription {
	return b.sub
}

// Unbind detaches both directions. It is shorthand for
// Subscription().Unsubscribe().
func (b *Binding) Unbind() {
	b.sub.Unsubscribe()
}
