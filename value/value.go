// Package value defines Value, the tagged union used to pass heterogeneous
// data between the engine and the scripting layer, and State, the key/value
// store shared with scripts each tick.
package value

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindMap
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ErrWrongKind is returned when a Value is accessed as a variant it does not
// hold
var ErrWrongKind = errors.New("value: wrong kind")

// Value is one of None, Bool, Int, Float, String, Map or Array. The zero
// value is None. Maps and arrays are reference types: copying a Value which
// holds one shares the underlying container.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	m    map[string]*Value
	a    []Value
}

// none is returned by read-only lookups which miss
var none = Value{}

func None() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Map returns a map Value holding a copy of entries
func Map(entries map[string]Value) Value {
	m := make(map[string]*Value, len(entries))
	for k, v := range entries {
		v := v
		m[k] = &v
	}
	return Value{kind: KindMap, m: m}
}

// Array returns an array Value of the given elements
func Array(elems ...Value) Value {
	a := make([]Value, len(elems))
	copy(a, elems)
	return Value{kind: KindArray, a: a}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool   { return v.kind == KindNone }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsInt() bool    { return v.kind == KindInt }
func (v Value) IsFloat() bool  { return v.kind == KindFloat }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsMap() bool    { return v.kind == KindMap }
func (v Value) IsArray() bool  { return v.kind == KindArray }

func (v Value) wrongKind(want Kind) error {
	return fmt.Errorf("%w: %s is not %s", ErrWrongKind, v.kind, want)
}

// AsBool returns the boolean. None is treated as false so optional flags can
// be read without checking for presence first.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindNone:
		return false, nil
	}
	return false, v.wrongKind(KindBool)
}

func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.wrongKind(KindInt)
	}
	return v.i, nil
}

func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.wrongKind(KindFloat)
	}
	return v.f, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.wrongKind(KindString)
	}
	return v.s, nil
}

// AsMap returns a copy of the map's entries
func (v Value) AsMap() (map[string]Value, error) {
	if v.kind != KindMap {
		return nil, v.wrongKind(KindMap)
	}
	m := make(map[string]Value, len(v.m))
	for k, e := range v.m {
		m[k] = *e
	}
	return m, nil
}

// AsArray returns the array's elements. The slice is shared with v.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.wrongKind(KindArray)
	}
	return v.a, nil
}

// Keys returns the keys of a map in sorted order
func (v Value) Keys() ([]string, error) {
	if v.kind != KindMap {
		return nil, v.wrongKind(KindMap)
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Get looks up key in a map without modifying it. A missing key yields None.
func (v Value) Get(key string) (Value, error) {
	if v.kind != KindMap {
		return none, v.wrongKind(KindMap)
	}
	e, ok := v.m[key]
	if !ok {
		return none, nil
	}
	return *e, nil
}

// Entry returns a pointer to the entry for key in a map, inserting None if
// the key is missing
func (v *Value) Entry(key string) (*Value, error) {
	if v.kind != KindMap {
		return nil, v.wrongKind(KindMap)
	}
	if v.m == nil {
		v.m = make(map[string]*Value)
	}
	e, ok := v.m[key]
	if !ok {
		e = &Value{}
		v.m[key] = e
	}
	return e, nil
}

// Set stores val under key in a map
func (v *Value) Set(key string, val Value) error {
	e, err := v.Entry(key)
	if err != nil {
		return err
	}
	*e = val
	return nil
}

// Delete removes key from a map
func (v *Value) Delete(key string) error {
	if v.kind != KindMap {
		return v.wrongKind(KindMap)
	}
	delete(v.m, key)
	return nil
}

// Index returns element i of an array
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindArray {
		return none, v.wrongKind(KindArray)
	}
	if i < 0 || i >= len(v.a) {
		return none, fmt.Errorf("value: index %d out of range [0:%d]", i, len(v.a))
	}
	return v.a[i], nil
}

// Append adds elements to the end of an array
func (v *Value) Append(elems ...Value) error {
	if v.kind != KindArray {
		return v.wrongKind(KindArray)
	}
	v.a = append(v.a, elems...)
	return nil
}

// Len returns the number of entries of a map or array, or the length in
// bytes of a string. Other kinds have no length.
func (v Value) Len() (int, error) {
	switch v.kind {
	case KindMap:
		return len(v.m), nil
	case KindArray:
		return len(v.a), nil
	case KindString:
		return len(v.s), nil
	}
	return 0, fmt.Errorf("%w: %s has no length", ErrWrongKind, v.kind)
}

// Empty reports whether v is None or an empty map, array or string. Scalars
// are never empty.
func (v Value) Empty() bool {
	switch v.kind {
	case KindNone:
		return true
	case KindMap:
		return len(v.m) == 0
	case KindArray:
		return len(v.a) == 0
	case KindString:
		return v.s == ""
	}
	return false
}

// Equal compares two values structurally. Values of different kinds are
// never equal, even Int(1) and Float(1).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, e := range v.m {
			oe, ok := o.m[k]
			if !ok || !e.Equal(*oe) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.a) != len(o.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(o.a[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the text form of v, which is what gets printed when a Value
// is rendered into a buffer. None is the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindMap:
		keys, _ := v.Keys()
		sb := strings.Builder{}
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(v.m[k].String())
		}
		sb.WriteByte('}')
		return sb.String()
	case KindArray:
		sb := strings.Builder{}
		sb.WriteByte('[')
		for i, e := range v.a {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return ""
}
