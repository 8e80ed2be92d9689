package dict

import (
	"fmt"
	"math"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticDispatch(t *testing.T) {
	tests := []struct {
		name string
		got  func() (*Value, error)
		want float64
	}{
		{"bool plus number", func() (*Value, error) { return NewValue(true).Add(NewValue(42)) }, 43},
		{"number plus bool", func() (*Value, error) { return NewValue(42).Add(NewValue(true)) }, 43},
		{"sub", func() (*Value, error) { return NewValue(10).Sub(NewValue(4)) }, 6},
		{"mul", func() (*Value, error) { return NewValue(6).Mul(NewValue(7)) }, 42},
		{"div", func() (*Value, error) { return NewValue(7).Div(NewValue(2)) }, 3.5},
		{"mod", func() (*Value, error) { return NewValue(42).Mod(NewValue(24)) }, 18},
		{"mod negative", func() (*Value, error) { return NewValue(-7).Mod(NewValue(3)) }, -1},
		{"neg", func() (*Value, error) { return NewValue(42).Neg() }, -42},
		{"pos", func() (*Value, error) { return NewValue(-42).Pos() }, -42},
		{"neg bool", func() (*Value, error) { return NewValue(true).Neg() }, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.got()
			require.NoError(t, err)
			assert.True(t, v.EqualNumber(tt.want), "got %s", v)
		})
	}
}

func TestBitwiseDispatch(t *testing.T) {
	tests := []struct {
		name string
		got  func() (*Value, error)
		want float64
	}{
		{"not", func() (*Value, error) { return NewValue(42).BitNot() }, -43},
		{"and", func() (*Value, error) { return NewValue(6).BitAnd(NewValue(3)) }, 2},
		{"or", func() (*Value, error) { return NewValue(6).BitOr(NewValue(3)) }, 7},
		{"xor", func() (*Value, error) { return NewValue(6).BitXor(NewValue(3)) }, 5},
		{"bool and", func() (*Value, error) { return NewValue(true).BitAnd(NewValue(1)) }, 1},
		{"bool not", func() (*Value, error) { return NewValue(false).BitNot() }, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.got()
			require.NoError(t, err)
			assert.True(t, v.EqualNumber(tt.want), "got %s", v)
		})
	}
}

func TestArithmeticLeavesReceiverKind(t *testing.T) {
	v := NewValue(true)
	out, err := v.Add(NewValue(42))
	require.NoError(t, err)
	assert.True(t, out.EqualNumber(43))
	// The receiver stays a boolean; only the result is a number.
	assert.Equal(t, KindBoolean, v.Kind())
}

func TestStringConcat(t *testing.T) {
	v := NewValue("foo")
	out, err := v.Add(NewValue("bar"))
	require.NoError(t, err)
	s, err := out.GetString()
	require.NoError(t, err)
	assert.Equal(t, "foobar", s)

	// The receiver keeps its own contents.
	s, _ = v.GetString()
	assert.Equal(t, "foo", s)
}

func TestOperatorRejections(t *testing.T) {
	tests := []struct {
		name   string
		err    func() error
		expect autogold.Value
	}{
		{
			name: "string plus number",
			err: func() error {
				_, err := NewValue("foo").Add(NewValue(42))
				return err
			},
			expect: autogold.Expect("has not a method operator+."),
		},
		{
			name: "array plus number",
			err: func() error {
				_, err := NewValue([]any{1}).Add(NewValue(1))
				return err
			},
			expect: autogold.Expect("has not a method operator+."),
		},
		{
			name: "null modulo",
			err: func() error {
				_, err := New().Mod(NewValue(2))
				return err
			},
			expect: autogold.Expect("has not a method operator%."),
		},
		{
			name: "object complement",
			err: func() error {
				_, err := NewValue(map[string]any{}).BitNot()
				return err
			},
			expect: autogold.Expect("has not a method operator~."),
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			err := tt.err()
			var method *MethodError
			require.ErrorAs(t, err, &method)
			tt.expect.Equal(t, method.Message)
		})
	}
}

func TestDivisionByZeroFollowsFloats(t *testing.T) {
	out, err := NewValue(1).Div(NewValue(0))
	require.NoError(t, err)
	f, err := out.GetNumber()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))
}

func TestEqualStructural(t *testing.T) {
	tree := map[string]any{"a": []any{1, "x", nil}, "b": true}
	assert.True(t, NewValue(tree).Equal(NewValue(tree)))

	assert.True(t, New().Equal(New()))
	assert.False(t, NewValue(0).Equal(NewValue(false)))
	assert.False(t, NewValue("1").Equal(NewValue(1)))
	assert.False(t, NewValue([]any{1}).Equal(NewValue([]any{1, 2})))
	assert.False(t, NewValue(map[string]any{"a": 1}).Equal(NewValue(map[string]any{"b": 1})))
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{1, 1, 0},
		{"a", "b", -1},
		{false, true, -1},
		{[]any{1, 2}, []any{1, 3}, -1},
		{[]any{1}, []any{1, 0}, -1},
		{map[string]any{"a": 1}, map[string]any{"b": 1}, -1},
		{map[string]any{"a": 1}, map[string]any{"a": 2}, -1},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			c, ok := NewValue(tt.a).Compare(NewValue(tt.b))
			require.True(t, ok)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestUnequalKindsNeverOrder(t *testing.T) {
	a, b := NewValue(1), NewValue("1")
	assert.False(t, a.Equal(b))
	assert.False(t, a.Less(b))
	assert.False(t, a.LessEqual(b))
	assert.False(t, a.Greater(b))
	assert.False(t, a.GreaterEqual(b))
}

func TestSizeDispatch(t *testing.T) {
	n, err := NewValue("abc").Size()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = NewValue([]any{1, 2}).Size()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = NewValue(map[string]any{"a": 1}).Size()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, v := range []*Value{New(), NewValue(true), NewValue(4)} {
		_, err := v.Size()
		var method *MethodError
		require.ErrorAs(t, err, &method)
		assert.Equal(t, "size", method.Method)
		assert.Equal(t, "has not a method size.", method.Message)
	}
}

func TestEmptyAndMaxSizeDispatch(t *testing.T) {
	empty, err := NewValue("").Empty()
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = NewValue([]any{1}).Empty()
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = NewValue(1).Empty()
	var method *MethodError
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "empty", method.Method)

	_, err = NewValue(true).MaxSize()
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "max_size", method.Method)

	n, err := NewValue([]any{}).MaxSize()
	require.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestCapacityResizeReserveDispatch(t *testing.T) {
	v := NewValue([]any{1})
	require.NoError(t, v.Reserve(16))
	c, err := v.Capacity()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c, 16)

	var method *MethodError
	_, err = NewValue(1).Capacity()
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "capacity", method.Method)

	err = New().Resize(3)
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "resize", method.Method)

	err = NewValue(map[string]any{}).Reserve(3)
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "reserve", method.Method)
}

func TestCoerceToSlice(t *testing.T) {
	v := NewValue([]any{42, 24, 1337})

	items, err := v.ToSlice()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].EqualNumber(42))
	assert.True(t, items[2].EqualNumber(1337))

	// Stack order contract: top of the stack is the last element.
	top := items[len(items)-1]
	assert.True(t, top.EqualNumber(1337))
}

func TestCoerceObjectToSlice(t *testing.T) {
	v := NewValue(map[string]any{"b": 2, "a": 1})
	items, err := v.ToSlice()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].EqualNumber(1))
	assert.True(t, items[1].EqualNumber(2))
}

func TestCoerceStringToSlice(t *testing.T) {
	v := NewValue("ab")
	items, err := v.ToSlice()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].EqualNumber(float64('a')))
}

func TestCoerceToList(t *testing.T) {
	v := NewValue([]any{42, 24})
	l, err := v.ToList()
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	assert.True(t, l.Front().Value.(*Value).EqualNumber(42))
	assert.True(t, l.Back().Value.(*Value).EqualNumber(24))
}

func TestCoerceToMap(t *testing.T) {
	v := NewValue([]any{42, 24, 1337})
	m, err := v.ToMap()
	require.NoError(t, err)
	require.Len(t, m, 3)
	assert.True(t, m["0"].EqualNumber(42))
	assert.True(t, m["1"].EqualNumber(24))
	assert.True(t, m["2"].EqualNumber(1337))

	obj := NewValue(map[string]any{"k": 1})
	m, err = obj.ToMap()
	require.NoError(t, err)
	assert.True(t, m["k"].EqualNumber(1))
}

func TestExtendRejectsUnsupportedShape(t *testing.T) {
	// A shape no clause accepts must report the rejected operator, not a
	// variant mismatch against a receiver that is already an array.
	v := NewValue([]any{1})
	err := v.Extend(42)
	var method *MethodError
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "operator+=", method.Method)
	assert.Equal(t, "has not a method operator+=.", method.Message)
	n, _ := v.Size()
	assert.Equal(t, 1, n)

	obj := NewValue(map[string]any{"k": 1})
	err = obj.Extend(true)
	require.ErrorAs(t, err, &method)
	assert.Equal(t, "has not a method operator+=.", method.Message)
	n, _ = obj.Size()
	assert.Equal(t, 1, n)
}

func TestCoercionRejectsLeaves(t *testing.T) {
	for _, v := range []*Value{New(), NewValue(true), NewValue(3)} {
		var method *MethodError

		_, err := v.ToSlice()
		require.ErrorAs(t, err, &method)

		_, err = v.ToMap()
		require.ErrorAs(t, err, &method)

		_, err = v.ToList()
		require.ErrorAs(t, err, &method)
	}
}
