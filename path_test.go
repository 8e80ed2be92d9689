package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) *Value {
	t.Helper()
	v := New()
	foo, err := v.Key("foo")
	require.NoError(t, err)
	require.NoError(t, foo.SetIndex(3, 42))
	return v
}

func TestPathNavigation(t *testing.T) {
	v := buildTree(t)

	cell, err := v.AtPath(NewPath().Key("foo").Index(3))
	require.NoError(t, err)
	assert.True(t, cell.EqualNumber(42))
}

func TestPathKeyMiss(t *testing.T) {
	v := buildTree(t)

	_, err := v.AtPath(NewPath().Key("bar").Index(3))
	var child *ChildError
	require.ErrorAs(t, err, &child)
	assert.True(t, child.HasKey)
	assert.Equal(t, "bar", child.Key)
}

func TestPathIndexMiss(t *testing.T) {
	v := buildTree(t)

	_, err := v.AtPath(NewPath().Key("foo").Index(4))
	var child *ChildError
	require.ErrorAs(t, err, &child)
	assert.False(t, child.HasKey)
	assert.Equal(t, 4, child.Index)
}

func TestPathWrongStepVariant(t *testing.T) {
	v := buildTree(t)

	// A number step against an object node.
	_, err := v.AtPath(NewPath().Index(3))
	var access *AccessError
	require.ErrorAs(t, err, &access)
	assert.True(t, strings.HasSuffix(access.Message, "(is object)."), access.Message)

	// A string step against an array node.
	_, err = v.AtPath(NewPath().Key("foo").Key("x"))
	require.ErrorAs(t, err, &access)
	assert.True(t, strings.HasSuffix(access.Message, "(is array)."), access.Message)
}

func TestPathIndexTruncatesTowardZero(t *testing.T) {
	v := buildTree(t)

	p := NewPath().Key("foo").Step(3.9)
	cell, err := v.AtPath(p)
	require.NoError(t, err)
	assert.True(t, cell.EqualNumber(42))
}

func TestContainsPath(t *testing.T) {
	v := buildTree(t)

	assert.True(t, v.ContainsPath(NewPath().Key("foo").Index(3)))
	assert.False(t, v.ContainsPath(NewPath().Key("bar")))
	assert.False(t, v.ContainsPath(NewPath().Index(0)))

	assert.True(t, v.ContainsPathKind(NewPath().Key("foo").Index(3), KindNumber))
	assert.False(t, v.ContainsPathKind(NewPath().Key("foo").Index(3), KindString))
	assert.True(t, v.ContainsPathKind(NewPath().Key("foo").Index(0), KindNull))
}

func TestEmptyPathIsIdentity(t *testing.T) {
	v := buildTree(t)
	cell, err := v.AtPath(NewPath())
	require.NoError(t, err)
	assert.Same(t, v, cell)
}

func TestPBuilder(t *testing.T) {
	v := buildTree(t)
	cell, err := v.AtPath(P("foo", 3))
	require.NoError(t, err)
	assert.True(t, cell.EqualNumber(42))
}

func TestDotPath(t *testing.T) {
	v := buildTree(t)

	cell, err := v.AtDotPath("foo.3")
	require.NoError(t, err)
	assert.True(t, cell.EqualNumber(42))

	_, err = v.AtDotPath("foo.9")
	var child *ChildError
	require.ErrorAs(t, err, &child)

	p := ParseDotPath("")
	assert.Len(t, p, 0)
}
