package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	i, err := Int(42).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	f, err := Float(1.5).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := String("hi").AsString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	_, err = String("hi").AsInt()
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = Int(1).AsFloat()
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = Bool(true).AsString()
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = None().AsMap()
	assert.ErrorIs(t, err, ErrWrongKind)
	_, err = Map(nil).AsArray()
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    bool
		wantErr bool
	}{
		{name: "true", value: Bool(true), want: true},
		{name: "false", value: Bool(false), want: false},
		{name: "none", value: None(), want: false},
		{name: "int", value: Int(1), wantErr: true},
		{name: "string", value: String("true"), wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.value.AsBool()
			if test.wantErr {
				assert.ErrorIs(t, err, ErrWrongKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestGetDoesNotInsert(t *testing.T) {
	m := Map(map[string]Value{"a": Int(1)})

	v, err := m.Get("missing")
	require.NoError(t, err)
	assert.True(t, v.IsNone())

	n, err := m.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Int(1).Get("a")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestEntryInserts(t *testing.T) {
	m := Map(nil)

	e, err := m.Entry("k")
	require.NoError(t, err)
	assert.True(t, e.IsNone())

	n, err := m.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	*e = String("set through entry")
	v, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "set through entry", v.String())

	arr := Array()
	_, err = arr.Entry("k")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestMapSharing(t *testing.T) {
	m := Map(nil)
	alias := m
	require.NoError(t, alias.Set("x", Int(7)))

	v, err := m.Get("x")
	require.NoError(t, err)
	assert.True(t, v.Equal(Int(7)))

	require.NoError(t, m.Delete("x"))
	assert.True(t, m.Empty())
}

func TestArray(t *testing.T) {
	a := Array(Int(1), String("two"))
	require.NoError(t, a.Append(Float(3)))

	n, err := a.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v, err := a.Index(1)
	require.NoError(t, err)
	assert.Equal(t, "two", v.String())

	_, err = a.Index(3)
	assert.Error(t, err)
	_, err = a.Index(-1)
	assert.Error(t, err)

	s := String("x")
	assert.ErrorIs(t, s.Append(Int(1)), ErrWrongKind)
}

func TestLen(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    int
		wantErr bool
	}{
		{name: "string", value: String("héllo"), want: 6},
		{name: "array", value: Array(None(), None()), want: 2},
		{name: "map", value: Map(map[string]Value{"a": None()}), want: 1},
		{name: "int", value: Int(3), wantErr: true},
		{name: "none", value: None(), wantErr: true},
		{name: "bool", value: Bool(true), wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.value.Len()
			if test.wantErr {
				assert.ErrorIs(t, err, ErrWrongKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestEmpty(t *testing.T) {
	assert.True(t, None().Empty())
	assert.True(t, String("").Empty())
	assert.True(t, Array().Empty())
	assert.True(t, Map(nil).Empty())
	assert.False(t, String(" ").Empty())
	assert.False(t, Int(0).Empty())
	assert.False(t, Bool(false).Empty())
}

func TestEqual(t *testing.T) {
	a := Map(map[string]Value{
		"list": Array(Int(1), Float(2.5)),
		"name": String("x"),
	})
	b := Map(map[string]Value{
		"name": String("x"),
		"list": Array(Int(1), Float(2.5)),
	})
	assert.True(t, a.Equal(b))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.False(t, Array(Int(1)).Equal(Array(Int(1), Int(2))))
	assert.True(t, None().Equal(Value{}))
}

func TestString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{value: None(), want: ""},
		{value: Bool(true), want: "true"},
		{value: Int(-3), want: "-3"},
		{value: Float(0.25), want: "0.25"},
		{value: String("abc"), want: "abc"},
		{value: Array(Int(1), String("b")), want: "[1, b]"},
		{value: Map(map[string]Value{"b": Int(2), "a": String("x")}), want: "{a: x, b: 2}"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.Equal(t, test.want, test.value.String())
		})
	}
}

func TestKeys(t *testing.T) {
	m := Map(map[string]Value{"c": None(), "a": None(), "b": None()})
	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
