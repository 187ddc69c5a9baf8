// Package shaper provides layout.TextShaper implementations.
//
// Cells measures in terminal cells and backs the Bubble Tea editor. Face
// measures in pixels with a golang.org/x/image/font face, for hosts that
// paint pills on an image.
package shaper
