package vinculo

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/petrijr/vinculo/pkg/observe"
	"github.com/petrijr/vinculo/pkg/vmodel"
)

// ForwardConverter computes the value to write into the target for the
// source property's current state. Returning an error aborts the sync and
// routes it to the forward error handler.
type ForwardConverter func(src vmodel.Property, dst *observe.Value) (any, error)

// BackwardConverter computes the value to write into the source property for
// the target's current state. Returning an error aborts the sync and routes
// it to the backward error handler.
type BackwardConverter func(dst *observe.Value, src vmodel.Property) (any, error)

// Identity passes the source property's value to the target unconverted.
func Identity() ForwardConverter {
	return func(src vmodel.Property, _ *observe.Value) (any, error) {
		return src.Get(), nil
	}
}

// BackIdentity passes the target's value to the source property unconverted.
func BackIdentity() BackwardConverter {
	return func(dst *observe.Value, _ vmodel.Property) (any, error) {
		return dst.Get(), nil
	}
}

// FloatToString renders the source's numeric value with a fixed number of
// fraction digits. A negative digit count is treated as zero. The source may
// hold any numeric kind.
func FloatToString(digits int) ForwardConverter {
	if digits < 0 {
		digits = 0
	}
	return func(src vmodel.Property, _ *observe.Value) (any, error) {
		f, err := toFloat64(src.Get())
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", src.Name(), err)
		}
		return strconv.FormatFloat(f, 'f', digits, 64), nil
	}
}

// StringToFloat parses the target's string value with strconv.ParseFloat.
// Parse failures surface as *strconv.NumError.
func StringToFloat() BackwardConverter {
	return func(dst *observe.Value, _ vmodel.Property) (any, error) {
		s, err := stringValue(dst.Get())
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

// IntToString renders the source's integral value in base 10.
func IntToString() ForwardConverter {
	return func(src vmodel.Property, _ *observe.Value) (any, error) {
		n, err := toInt64(src.Get())
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", src.Name(), err)
		}
		return strconv.FormatInt(n, 10), nil
	}
}

// StringToInt parses the target's string value with strconv.Atoi.
// Parse failures surface as *strconv.NumError.
func StringToInt() BackwardConverter {
	return func(dst *observe.Value, _ vmodel.Property) (any, error) {
		s, err := stringValue(dst.Get())
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

func toFloat64(v any) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value is not numeric")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("value of type %T is not numeric", v)
}

func toInt64(v any) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value is not numeric")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("value of type %T is not integral", v)
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("value of type %T is not a string", v)
	}
	return s, nil
}
