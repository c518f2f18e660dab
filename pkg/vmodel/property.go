package vmodel

import (
	"reflect"
	"sync"

	"github.com/petrijr/vinculo/internal/notify"
	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/ygrebnov/errorc"
)

// Change describes a completed mutation of a model property.
type Change struct {
	Property Property
	Old      any
	New      any
}

// ChangeListener receives Change notifications for one property.
type ChangeListener func(Change)

// Property is an observable field of a wrapped model object.
//
// Set accepts any value assignable to the field, converting across numeric
// kinds; everything else fails with ErrTypeMismatch. Setting a value equal to
// the current one neither mutates nor notifies, so a value bounced back
// through a bidirectional binding converges instead of looping.
type Property interface {
	Name() string
	Type() reflect.Type
	Get() any
	Set(value any) error
	AddChangeListener(l ChangeListener) observe.Subscription
}

type fieldProperty struct {
	name      string
	mu        sync.Mutex
	value     reflect.Value // addressable field inside the wrapped struct
	listeners notify.Hub[ChangeListener]
}

func (p *fieldProperty) Name() string { return p.name }

func (p *fieldProperty) Type() reflect.Type { return p.value.Type() }

func (p *fieldProperty) Get() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value.Interface()
}

func (p *fieldProperty) Set(value any) error {
	p.mu.Lock()
	next, err := p.coerce(value)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	old := p.value.Interface()
	if reflect.DeepEqual(old, next.Interface()) {
		p.mu.Unlock()
		return nil
	}
	p.value.Set(next)
	change := Change{Property: p, Old: old, New: next.Interface()}
	p.mu.Unlock()

	for _, l := range p.listeners.Snapshot() {
		l(change)
	}
	return nil
}

func (p *fieldProperty) AddChangeListener(l ChangeListener) observe.Subscription {
	if l == nil {
		return observe.NoopSubscription()
	}
	return observe.NewSubscription(p.listeners.Add(l))
}

// coerce validates value against the field type. Caller holds p.mu.
func (p *fieldProperty) coerce(value any) (reflect.Value, error) {
	fieldType := p.value.Type()
	if value == nil {
		switch fieldType.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(fieldType), nil
		}
		return reflect.Value{}, p.mismatch("<nil>")
	}
	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(fieldType) {
		return rv, nil
	}
	if isNumericKind(rv.Kind()) && isNumericKind(fieldType.Kind()) {
		return rv.Convert(fieldType), nil
	}
	return reflect.Value{}, p.mismatch(rv.Type().String())
}

func (p *fieldProperty) mismatch(valueType string) error {
	return errorc.With(ErrTypeMismatch,
		errorc.String(ErrorFieldProperty, p.name),
		errorc.String(ErrorFieldValueType, valueType),
		errorc.String(ErrorFieldFieldType, p.value.Type().String()))
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
