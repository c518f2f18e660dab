package vinculo

import (
	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/petrijr/vinculo/pkg/vmodel"
)

// ErrorHandler is invoked with the binding's endpoints and the error that
// broke a sync. A handler configured for a direction swallows that
// direction's errors; without one they escalate as runtime faults.
type ErrorHandler func(src vmodel.Property, dst *observe.Value, err error)

// Predicate gates value-triggered back-sync on the target's current value.
type Predicate func(value any) bool

// ActionSource is anything that emits discrete user actions, such as a
// button press or an entry submit. The widgets in pkg/tui satisfy it.
type ActionSource interface {
	// AddActionListener registers fn to run on every action event and
	// returns a handle that detaches it.
	AddActionListener(fn func()) observe.Subscription
}

// backSyncKind selects how the target -> model direction is wired.
type backSyncKind int

const (
	backSyncNone backSyncKind = iota
	backSyncAlways
	backSyncWhen
	backSyncOnAction
)

// backSyncPolicy is the back-sync configuration as a single value. The three
// policy methods each overwrite it whole, so a binder can never hold a stale
// predicate or action source from an earlier call.
type backSyncPolicy struct {
	kind     backSyncKind
	backward BackwardConverter
	pred     Predicate
	source   ActionSource
}

// PropBinderUntyped provides a fluent API for defining bindings:
//
//	binding := vinculo.SelectProp(nameProp).
//	    WithConverter(vinculo.Identity()).
//	    WithTargetProp(entry.TextProperty()).
//	    BackSync(vinculo.BackIdentity()).
//	    Bind()
//
//	defer binding.Unbind()
//
// Each stage exposes only the legal next calls, so a chain without a
// converter or target cannot be expressed. Nil arguments panic immediately.
type PropBinderUntyped struct {
	src vmodel.Property
}

// SelectProp starts a binding chain at the given source model property.
func SelectProp(src vmodel.Property) *PropBinderUntyped {
	if src == nil {
		panic("vinculo: nil source property")
	}
	return &PropBinderUntyped{src: src}
}

// SelectPropOfObject starts a binding chain at the named property of a
// wrapped object. Unknown names fail here, at selection time, with
// vmodel.ErrPropertyNotFound.
func SelectPropOfObject(obj *vmodel.Object, name string) (*PropBinderUntyped, error) {
	if obj == nil {
		panic("vinculo: nil object")
	}
	p, err := obj.PropertyByName(name)
	if err != nil {
		return nil, err
	}
	return SelectProp(p), nil
}

// MustSelectPropOfObject is like SelectPropOfObject but panics on error.
// Useful for initialization in main().
func MustSelectPropOfObject(obj *vmodel.Object, name string) *PropBinderUntyped {
	b, err := SelectPropOfObject(obj, name)
	if err != nil {
		panic(err)
	}
	return b
}

// Source returns the selected source property.
func (b *PropBinderUntyped) Source() vmodel.Property {
	return b.src
}

// WithConverter sets the model -> target converter and advances the chain.
func (b *PropBinderUntyped) WithConverter(conv ForwardConverter) *PropBinder {
	if conv == nil {
		panic("vinculo: nil forward converter")
	}
	return &PropBinder{src: b.src, forward: conv}
}

// PropBinder holds the source property and forward converter, pending a
// target.
type PropBinder struct {
	src        vmodel.Property
	forward    ForwardConverter
	forwardErr ErrorHandler
}

// WithErrorHandler routes forward sync failures to h instead of escalating
// them as runtime faults.
func (b *PropBinder) WithErrorHandler(h ErrorHandler) *PropBinder {
	b.forwardErr = h
	return b
}

// WithTargetProp sets the target value and advances the chain.
func (b *PropBinder) WithTargetProp(dst *observe.Value) *FXBinder {
	if dst == nil {
		panic("vinculo: nil target property")
	}
	return &FXBinder{
		src:        b.src,
		dst:        dst,
		forward:    b.forward,
		forwardErr: b.forwardErr,
		observer:   NoopObserver{},
	}
}

// FXBinder holds the complete binding configuration: both endpoints, the
// forward converter, and the back-sync policy.
//
// The three policy methods BackSync, BackSyncIf and BackSyncOnActionEventOf
// are mutually exclusive; the last call before Bind wins. Without any of
// them the binding is forward-only.
type FXBinder struct {
	src        vmodel.Property
	dst        *observe.Value
	forward    ForwardConverter
	forwardErr ErrorHandler
	backErr    ErrorHandler
	policy     backSyncPolicy
	observer   Observer
}

// WithErrorHandler routes backward sync failures to h instead of escalating
// them as runtime faults.
func (b *FXBinder) WithErrorHandler(h ErrorHandler) *FXBinder {
	b.backErr = h
	return b
}

// WithObserver attaches an Observer to the binding built by Bind.
// Passing nil restores the default NoopObserver.
func (b *FXBinder) WithObserver(o Observer) *FXBinder {
	if o == nil {
		o = NoopObserver{}
	}
	b.observer = o
	return b
}

// BackSync enables unconditional target -> model sync: every target change
// propagates back through conv.
func (b *FXBinder) BackSync(conv BackwardConverter) *FXBinder {
	if conv == nil {
		panic("vinculo: nil backward converter")
	}
	b.policy = backSyncPolicy{kind: backSyncAlways, backward: conv}
	return b
}

// BackSyncIf enables target -> model sync gated on pred, evaluated against
// the target's current value at notification time.
func (b *FXBinder) BackSyncIf(pred Predicate, conv BackwardConverter) *FXBinder {
	if pred == nil {
		panic("vinculo: nil back-sync predicate")
	}
	if conv == nil {
		panic("vinculo: nil backward converter")
	}
	b.policy = backSyncPolicy{kind: backSyncWhen, backward: conv, pred: pred}
	return b
}

// BackSyncOnActionEventOf enables target -> model sync that runs only on
// action events of src, never on plain target changes.
func (b *FXBinder) BackSyncOnActionEventOf(src ActionSource, conv BackwardConverter) *FXBinder {
	if src == nil {
		panic("vinculo: nil action source")
	}
	if conv == nil {
		panic("vinculo: nil backward converter")
	}
	b.policy = backSyncPolicy{kind: backSyncOnAction, backward: conv, source: src}
	return b
}

// Bind installs both directions of listeners and pushes the current model
// value into the target once. The returned Binding is live; detach it via
// Unbind or its Subscription.
func (b *FXBinder) Bind() *Binding {
	return newBinding(b)
}
