package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanPromotesNull(t *testing.T) {
	v := New()
	b, err := v.Boolean()
	require.NoError(t, err)
	assert.False(t, b)
	assert.Equal(t, KindBoolean, v.Kind())
}

func TestGetBooleanDoesNotPromote(t *testing.T) {
	v := New()
	_, err := v.GetBoolean()
	var access *AccessError
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "is not a boolean (is null).", access.Message)
	assert.True(t, v.IsNull())

	_, err = NewValue("x").GetBoolean()
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "is not a boolean (is string).", access.Message)
}

func TestNumberPromotesNull(t *testing.T) {
	v := New()
	f, err := v.Number()
	require.NoError(t, err)
	assert.Equal(t, float64(0), f)
	assert.Equal(t, KindNumber, v.Kind())

	// Promotion only applies to null.
	_, err = NewValue("x").Number()
	var access *AccessError
	require.ErrorAs(t, err, &access)
}

func TestNumericCasts(t *testing.T) {
	v := NewValue(42.9)

	i, err := v.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	u, err := v.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u)

	f, err := v.Float64()
	require.NoError(t, err)
	assert.Equal(t, 42.9, f)

	_, err = NewValue(true).Int64()
	var access *AccessError
	require.ErrorAs(t, err, &access)
}

func TestSetLeafWriters(t *testing.T) {
	v := New()
	require.NoError(t, v.SetBoolean(true))
	assert.True(t, v.EqualBool(true))

	// A boolean cell rejects the number writer.
	err := v.SetNumber(1)
	var access *AccessError
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "is not a number (is boolean).", access.Message)

	v.Clear()
	require.NoError(t, v.SetNumber(4.5))
	assert.True(t, v.EqualNumber(4.5))
}

func TestRawComparisonsNeverError(t *testing.T) {
	n := NewValue(42)
	assert.True(t, n.EqualNumber(42))
	assert.True(t, n.LessNumber(43))
	assert.True(t, n.LessEqualNumber(42))
	assert.True(t, n.GreaterNumber(41))
	assert.True(t, n.GreaterEqualNumber(42))

	// A mismatched variant compares false for every relation.
	s := NewValue("42")
	assert.False(t, s.EqualNumber(42))
	assert.False(t, s.LessNumber(43))
	assert.False(t, s.GreaterNumber(41))
	assert.False(t, s.EqualBool(true))

	b := NewValue(true)
	assert.True(t, b.EqualBool(true))
	assert.False(t, b.EqualBool(false))
	assert.True(t, NewValue(false).LessBool(true))
	assert.True(t, b.GreaterBool(false))
	assert.False(t, b.EqualNumber(1))
}
