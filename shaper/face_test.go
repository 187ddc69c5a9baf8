package shaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoRegular_RejectsBadSize(t *testing.T) {
	_, err := NewGoRegular(0)
	require.Error(t, err)
}

func TestFace_Metrics(t *testing.T) {
	f, err := NewGoRegular(12)
	require.NoError(t, err)

	assert.Positive(t, f.LineHeight())
	assert.GreaterOrEqual(t, f.MaxCharWidth(), f.Width("i"))
	assert.GreaterOrEqual(t, f.MaxCharWidth(), f.Width("W"))
	assert.Zero(t, f.Width(""))
}

func TestFace_CursorRoundTrip(t *testing.T) {
	f, err := NewGoRegular(16)
	require.NoError(t, err)

	const text = "hello tags"
	assert.Equal(t, f.Width(text), f.CursorToX(text, len(text)))

	prev := -1
	for i := 0; i <= len(text); i++ {
		x := f.CursorToX(text, i)
		assert.Greater(t, x, prev, "CursorToX must grow at %d", i)
		prev = x
		assert.Equal(t, i, f.XToCursor(text, x), "XToCursor(CursorToX(%d))", i)
	}
	assert.Equal(t, 0, f.XToCursor(text, -10))
	assert.Equal(t, len(text), f.XToCursor(text, 10000))
}
