package shaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCells_Width(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"中文", 4},
		{"éx", 2},
		{"a中", 3},
	}
	var c Cells
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Width(tc.text), "Width(%q)", tc.text)
	}
}

func TestCells_CursorToX(t *testing.T) {
	var c Cells
	assert.Equal(t, 0, c.CursorToX("a中b", 0))
	assert.Equal(t, 1, c.CursorToX("a中b", 1))
	assert.Equal(t, 3, c.CursorToX("a中b", 2))
	assert.Equal(t, 4, c.CursorToX("a中b", 3))
	assert.Equal(t, c.Width("a中b"), c.CursorToX("a中b", 9))
}

func TestCells_XToCursor(t *testing.T) {
	var c Cells
	cases := []struct {
		x, want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 2}, // right half of 中
		{3, 2},
		{4, 3},
		{40, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.XToCursor("a中b", tc.x), "XToCursor(%d)", tc.x)
	}
}

func TestCells_Boundaries(t *testing.T) {
	var c Cells
	assert.Equal(t, 1, c.NextBoundary("éx", 0))
	assert.Equal(t, 2, c.NextBoundary("éx", 2))
	assert.Equal(t, 0, c.PrevBoundary("éx", 0))
	assert.Equal(t, 1, c.PrevBoundary("éx", 2))
	assert.Equal(t, 1, c.LineHeight())
	assert.Equal(t, 2, c.MaxCharWidth())
}
