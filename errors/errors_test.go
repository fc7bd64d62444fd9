package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestInvalidSpecSentinel(t *testing.T) {
	err := NewInvalidSpecError("superclass already set to %s", "Base")

	require.NotNil(t, err)
	assert.True(t, IsInvalidSpecError(err))
	assert.Contains(t, err.Error(), "superclass already set to Base")

	// Context added later preserves the sentinel
	wrapped := Wrap(err, "building class Point")
	assert.True(t, IsInvalidSpecError(wrapped))
}

func TestInvalidManifestSentinel(t *testing.T) {
	err := NewInvalidManifestError("class %d has no name", 3)

	require.NotNil(t, err)
	assert.True(t, Is(err, ErrInvalidManifest))
	assert.False(t, IsInvalidSpecError(err))
	assert.Contains(t, err.Error(), "class 3 has no name")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleWrap() {
	baseErr := New("unknown modifier")
	err := Wrap(baseErr, "failed to build class Point")
	fmt.Println(err)
	// Output: failed to build class Point: unknown modifier
}
