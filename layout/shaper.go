package layout

// TextShaper measures single-line text.
//
// Positions are grapheme cluster offsets into text. Implementations must be
// consistent: CursorToX(text, Count(text)) == Width(text).
type TextShaper interface {
	// Width returns the advance of text.
	Width(text string) int
	// LineHeight returns the height of one line of text.
	LineHeight() int
	// MaxCharWidth returns the widest advance of any single character.
	MaxCharWidth() int

	// CursorToX maps a cursor position to an offset from the text start.
	CursorToX(text string, pos int) int
	// XToCursor maps an offset from the text start to the nearest position.
	XToCursor(text string, x int) int

	// NextBoundary returns the cursor position after pos.
	NextBoundary(text string, pos int) int
	// PrevBoundary returns the cursor position before pos.
	PrevBoundary(text string, pos int) int
}
