package value

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by FromAny for native values with no Value
// representation
var ErrUnsupported = errors.New("value: unsupported type")

// FromAny converts a native dynamic value, such as one produced by a YAML or
// JSON decoder, into a Value. Nil becomes None, integer types become Int,
// float types become Float, slices become Array and maps with string keys
// become Map.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return None(), nil
		}
		return *x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []Value:
		return Array(x...), nil
	case []any:
		a := make([]Value, 0, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return None(), fmt.Errorf("index %d: %w", i, err)
			}
			a = append(a, v)
		}
		return Value{kind: KindArray, a: a}, nil
	case []string:
		a := make([]Value, 0, len(x))
		for _, e := range x {
			a = append(a, String(e))
		}
		return Value{kind: KindArray, a: a}, nil
	case map[string]Value:
		return Map(x), nil
	case map[string]any:
		m := make(map[string]*Value, len(x))
		for k, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return None(), fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = &v
		}
		return Value{kind: KindMap, m: m}, nil
	case map[any]any:
		m := make(map[string]*Value, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return None(), fmt.Errorf("%w: map key %v (%T)", ErrUnsupported, k, k)
			}
			v, err := FromAny(e)
			if err != nil {
				return None(), fmt.Errorf("key %q: %w", ks, err)
			}
			m[ks] = &v
		}
		return Value{kind: KindMap, m: m}, nil
	}
	return None(), fmt.Errorf("%w: %T", ErrUnsupported, x)
}

// Any converts v into native Go values: nil, bool, int64, float64, string,
// map[string]any or []any
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindMap:
		m := make(map[string]any, len(v.m))
		for k, e := range v.m {
			m[k] = e.Any()
		}
		return m
	case KindArray:
		a := make([]any, 0, len(v.a))
		for _, e := range v.a {
			a = append(a, e.Any())
		}
		return a
	}
	return nil
}
