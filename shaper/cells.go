package shaper

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/tagpill/internal/grapheme"
	"github.com/iw2rmb/tagpill/layout"
)

// Cells measures text in terminal cells. One line is one cell tall.
type Cells struct{}

var _ layout.TextShaper = Cells{}

func (Cells) LineHeight() int { return 1 }

// MaxCharWidth is two cells, the width of an East Asian wide character.
func (Cells) MaxCharWidth() int { return 2 }

func (c Cells) Width(text string) int {
	w := 0
	for _, g := range grapheme.Split(text) {
		w += clusterWidth(g)
	}
	return w
}

func (c Cells) CursorToX(text string, pos int) int {
	x := 0
	for i, g := range grapheme.Split(text) {
		if i >= pos {
			break
		}
		x += clusterWidth(g)
	}
	return x
}

// XToCursor returns the cluster boundary closest to x. A click on the right
// half of a wide cluster lands after it.
func (c Cells) XToCursor(text string, x int) int {
	if x <= 0 {
		return 0
	}
	left := 0
	clusters := grapheme.Split(text)
	for i, g := range clusters {
		w := clusterWidth(g)
		if 2*x < 2*left+w {
			return i
		}
		left += w
	}
	return len(clusters)
}

func (c Cells) NextBoundary(text string, pos int) int {
	return min(pos+1, grapheme.Count(text))
}

func (c Cells) PrevBoundary(text string, pos int) int {
	return max(pos-1, 0)
}

func clusterWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w <= 0 {
		w = uniseg.StringWidth(g)
	}
	return max(w, 0)
}
