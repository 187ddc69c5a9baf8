// Package layout places tag pills.
//
// All geometry is in abstract units: terminal cells when driven by the editor
// package, pixels when driven by a font-backed TextShaper. Rectangles are
// half-open: a Rect covers [X, X+W) × [Y, Y+H).
package layout
