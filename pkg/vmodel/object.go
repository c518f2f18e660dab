// Package vmodel turns plain Go structs into observable model objects.
//
// Wrap reflects over a pointer to a struct and exposes each exported field as
// a named Property: readable, writable with type checking, and observable
// through change listeners. Objects are the model half of a binding; the other
// half is an observable UI value (see pkg/observe).
package vmodel

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"
)

// Object is an observable view over a wrapped struct. It holds one Property
// per top-level exported field; unexported fields are skipped and embedded
// structs are not promoted.
type Object struct {
	typ   reflect.Type
	props map[string]*fieldProperty
	names []string // declaration order
}

// Wrap builds an Object for target, which must be a non-nil pointer to a
// struct. Mutations performed through the returned properties write directly
// into the pointed-to struct.
func Wrap(target any) (*Object, error) {
	if target == nil {
		return nil, ErrNilObject
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, errorc.With(ErrNotStructPtr,
			errorc.String(ErrorFieldObjectType, fmt.Sprintf("%T", target)))
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, errorc.With(ErrNotStructPtr,
			errorc.String(ErrorFieldObjectType, fmt.Sprintf("%T", target)))
	}

	o := &Object{
		typ:   elem.Type(),
		props: make(map[string]*fieldProperty),
	}
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		p := &fieldProperty{name: field.Name, value: elem.Field(i)}
		o.props[field.Name] = p
		o.names = append(o.names, field.Name)
	}
	return o, nil
}

// MustWrap is like Wrap but panics on error.
// Useful for initialization in main().
func MustWrap(target any) *Object {
	o, err := Wrap(target)
	if err != nil {
		panic(err)
	}
	return o
}

// Type returns the reflect.Type of the wrapped struct.
func (o *Object) Type() reflect.Type { return o.typ }

// PropertyByName returns the property for the given exported field name.
// Unknown names fail immediately with ErrPropertyNotFound.
func (o *Object) PropertyByName(name string) (Property, error) {
	if p, ok := o.props[name]; ok {
		return p, nil
	}
	return nil, errorc.With(ErrPropertyNotFound,
		errorc.String(ErrorFieldProperty, name),
		errorc.String(ErrorFieldObjectType, o.typ.String()))
}

// Properties returns all properties in field declaration order.
func (o *Object) Properties() []Property {
	out := make([]Property, 0, len(o.names))
	for _, name := range o.names {
		out = append(out, o.props[name])
	}
	return out
}
