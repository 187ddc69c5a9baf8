package shaper

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iw2rmb/tagpill/internal/grapheme"
	"github.com/iw2rmb/tagpill/layout"
)

// Face measures text in whole pixels using a font face. Sub-pixel advances
// accumulate before rounding up, so CursorToX is monotonic in pos.
//
// Face is not safe for concurrent use; font.Face implementations cache
// glyphs.
type Face struct {
	face    font.Face
	height  int
	maxChar int
}

var _ layout.TextShaper = (*Face)(nil)

// NewFace wraps face.
func NewFace(face font.Face) *Face {
	f := &Face{face: face, height: face.Metrics().Height.Ceil()}
	for r := rune(0x20); r < 0x7f; r++ {
		if adv, ok := face.GlyphAdvance(r); ok {
			f.maxChar = max(f.maxChar, adv.Ceil())
		}
	}
	return f
}

// NewGoRegular returns the Go Regular font at size points, 72 DPI.
func NewGoRegular(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shaper: font size must be positive, got %v", size)
	}
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("shaper: parse go regular: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("shaper: new face: %w", err)
	}
	return NewFace(face), nil
}

func (f *Face) LineHeight() int   { return f.height }
func (f *Face) MaxCharWidth() int { return f.maxChar }

func (f *Face) Width(text string) int {
	adv := f.advances(text)
	return adv[len(adv)-1].Ceil()
}

func (f *Face) CursorToX(text string, pos int) int {
	adv := f.advances(text)
	pos = min(max(pos, 0), len(adv)-1)
	return adv[pos].Ceil()
}

func (f *Face) XToCursor(text string, x int) int {
	adv := f.advances(text)
	fx := fixed.I(x)
	for i := 1; i < len(adv); i++ {
		if fx < (adv[i-1]+adv[i])/2 {
			return i - 1
		}
	}
	return len(adv) - 1
}

func (f *Face) NextBoundary(text string, pos int) int {
	return min(pos+1, grapheme.Count(text))
}

func (f *Face) PrevBoundary(text string, pos int) int {
	return max(pos-1, 0)
}

// advances returns the pen position at every cluster boundary; adv[0] is 0
// and adv[len(adv)-1] is the full advance.
func (f *Face) advances(text string) []fixed.Int26_6 {
	clusters := grapheme.Split(text)
	out := make([]fixed.Int26_6, 1, len(clusters)+1)
	var pen fixed.Int26_6
	prev := rune(-1)
	for _, g := range clusters {
		for _, r := range g {
			if prev >= 0 {
				pen += f.face.Kern(prev, r)
			}
			if a, ok := f.face.GlyphAdvance(r); ok {
				pen += a
			}
			prev = r
		}
		out = append(out, pen)
	}
	return out
}
