// Package editor provides a Bubble Tea tag input backed by the tags package.
//
// Tags render as pills with a delete glyph. One tag at a time is open for
// typing; space commits it and opens a new one. ModeLine keeps pills on one
// row and scrolls horizontally, ModeArea wraps rows and scrolls vertically.
//
// The package handles keys, mouse presses, focus, caret blinking,
// completion, clipboard, and the OnTagsEdited host hook. Geometry is in
// terminal cells and comes from the layout package.
package editor
