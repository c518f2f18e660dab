package vmodel

import "github.com/ygrebnov/errorc"

var namespace = errorc.Namespace("vmodel")

// Sentinel errors for wrapping and property access. Use errors.Is to match.
var (
	ErrNilObject        = namespace.NewError("nil object")
	ErrNotStructPtr     = namespace.NewError("object must be a non-nil pointer to struct")
	ErrPropertyNotFound = namespace.NewError("property not found")
	ErrTypeMismatch     = namespace.NewError("value type mismatch")
)

var newKey = errorc.KeyFactory("vmodel")

// Structured error field keys. Keep string values stable for log queries.
var (
	ErrorFieldProperty   = newKey("property")    // vmodel.property
	ErrorFieldObjectType = newKey("object_type") // vmodel.object_type
	ErrorFieldValueType  = newKey("value_type")  // vmodel.value_type
	ErrorFieldFieldType  = newKey("field_type")  // vmodel.field_type
)
