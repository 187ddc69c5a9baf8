// Package tags implements the pure tag-editing model.
//
// A Collection holds an ordered, never empty list of tags, one of which is
// open for editing. Two invariants hold after every exported mutation:
//
//   - only the editing tag may have empty text;
//   - with Options.Unique, tag texts are pairwise distinct, except that the
//     editing tag may equal one other tag until editing moves away.
//
// Cursor and selection offsets count grapheme clusters of the editing tag.
package tags
