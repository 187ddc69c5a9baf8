// Package grapheme indexes strings by grapheme cluster.
//
// Tag text offsets (cursor, selection) count clusters, so a combining mark or
// an emoji sequence is always moved over and deleted as one unit.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ByteOffset returns the byte offset of cluster index i.
// Indices past the end map to len(text).
func ByteOffset(text string, i int) int {
	if i <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		if n == i {
			from, _ := g.Positions()
			return from
		}
		n++
	}
	return len(text)
}

// Slice returns the substring for clusters [start, end).
func Slice(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	return text[ByteOffset(text, start):ByteOffset(text, end)]
}

// Insert inserts s before cluster index at.
func Insert(text string, at int, s string) string {
	off := ByteOffset(text, at)
	var sb strings.Builder
	sb.Grow(len(text) + len(s))
	sb.WriteString(text[:off])
	sb.WriteString(s)
	sb.WriteString(text[off:])
	return sb.String()
}

// Delete removes clusters [start, end).
func Delete(text string, start, end int) string {
	if end <= start {
		return text
	}
	return text[:ByteOffset(text, start)] + text[ByteOffset(text, end):]
}
