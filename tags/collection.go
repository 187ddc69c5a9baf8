package tags

import (
	"fmt"
	"slices"

	"github.com/iw2rmb/tagpill/internal/grapheme"
	"github.com/iw2rmb/tagpill/layout"
)

// Collection is the tag list plus the text-editing state of its editing tag.
type Collection struct {
	tags    []Tag
	editing int
	cursor  int
	sel     Selection
	opt     Options
	version uint64
}

// New returns a collection in the default state: one empty editing tag.
func New(opt Options) *Collection {
	return &Collection{tags: []Tag{{}}, opt: opt}
}

func (c *Collection) Len() int             { return len(c.tags) }
func (c *Collection) EditingIndex() int    { return c.editing }
func (c *Collection) EditingText() string  { return c.tags[c.editing].Text }
func (c *Collection) Cursor() int          { return c.cursor }
func (c *Collection) Selection() Selection { return c.sel }
func (c *Collection) Unique() bool         { return c.opt.Unique }

// Version increases on every state change, including cursor moves.
func (c *Collection) Version() uint64 { return c.version }

// At returns tag i.
func (c *Collection) At(i int) Tag {
	checkIndex("At", i, len(c.tags))
	return c.tags[i]
}

// Tags returns a copy of the tag list, editing tag included.
func (c *Collection) Tags() []Tag {
	return slices.Clone(c.tags)
}

// Texts returns every tag text, editing tag included.
func (c *Collection) Texts() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.Text
	}
	return out
}

// SetRect records the layout of tag i. It does not bump Version.
func (c *Collection) SetRect(i int, r layout.Rect) {
	checkIndex("SetRect", i, len(c.tags))
	c.tags[i].Rect = r
}

// IsCurrentTagADuplicate reports whether the editing text equals the text of
// any other tag.
func (c *Collection) IsCurrentTagADuplicate() bool {
	text := c.EditingText()
	for i, t := range c.tags {
		if i != c.editing && t.Text == text {
			return true
		}
	}
	return false
}

// vacatable reports whether the editing tag must be dropped when editing
// moves away from it.
func (c *Collection) vacatable() bool {
	return c.EditingText() == "" || (c.opt.Unique && c.IsCurrentTagADuplicate())
}

// SetEditingIndex makes tag i the editing tag. The tag being left is removed
// when it is empty or, with Unique, a duplicate. i == EditingIndex is a
// no-op. The cursor is clamped to the new text and the selection cleared.
func (c *Collection) SetEditingIndex(i int) {
	checkIndex("SetEditingIndex", i, len(c.tags))
	if i == c.editing {
		return
	}
	if c.vacatable() {
		c.tags = slices.Delete(c.tags, c.editing, c.editing+1)
		if c.editing < i {
			i--
		}
	}
	c.editing = i
	c.cursor = min(c.cursor, grapheme.Count(c.EditingText()))
	c.sel = Selection{}
	c.touch()
}

// InsertAndEdit inserts an empty tag at i and makes it the editing tag with
// the cursor at 0.
func (c *Collection) InsertAndEdit(i int) {
	checkIndex("InsertAndEdit", i, len(c.tags)+1)
	c.tags = slices.Insert(c.tags, i, Tag{})
	if i <= c.editing {
		c.editing++
	}
	c.SetEditingIndex(i)
	c.MoveCursor(0, false)
	c.touch()
}

// RemoveTag erases tag i. Removing the editing tag appends a fresh empty
// editing tag, so the list never empties and no committed tag becomes the
// edit target as a side effect.
func (c *Collection) RemoveTag(i int) {
	checkIndex("RemoveTag", i, len(c.tags))
	c.tags = slices.Delete(c.tags, i, i+1)
	switch {
	case i < c.editing:
		c.editing--
	case i == c.editing:
		c.tags = append(c.tags, Tag{})
		c.editing = len(c.tags) - 1
		c.cursor = 0
		c.sel = Selection{}
	}
	c.touch()
}

// EditPrevious moves editing to the previous tag with the cursor at its end.
func (c *Collection) EditPrevious() {
	if c.editing == 0 {
		return
	}
	c.SetEditingIndex(c.editing - 1)
	c.MoveCursor(grapheme.Count(c.EditingText()), false)
}

// EditNext moves editing to the next tag with the cursor at its start.
func (c *Collection) EditNext() {
	if c.editing >= len(c.tags)-1 {
		return
	}
	c.SetEditingIndex(c.editing + 1)
	c.MoveCursor(0, false)
}

// EditTag moves editing to tag i with the cursor at the end of its text.
func (c *Collection) EditTag(i int) {
	c.SetEditingIndex(i)
	c.MoveCursor(grapheme.Count(c.EditingText()), false)
}

// SetEditingText replaces the editing text and puts the cursor at its end.
func (c *Collection) SetEditingText(s string) {
	c.tags[c.editing].Text = s
	c.cursor = grapheme.Count(s)
	c.sel = Selection{}
	c.touch()
}

// ReplaceAll loads texts, dropping empty strings and, with Unique, repeats of
// an earlier text. An empty editing tag is appended after them.
func (c *Collection) ReplaceAll(texts []string) {
	seen := make(map[string]struct{}, len(texts))
	out := make([]Tag, 0, len(texts)+1)
	for _, s := range texts {
		if s == "" {
			continue
		}
		if c.opt.Unique {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
		}
		out = append(out, Tag{Text: s})
	}
	c.tags = append(out, Tag{})
	c.editing = len(c.tags) - 1
	c.cursor = 0
	c.sel = Selection{}
	c.touch()
}

// ExportAll returns the tag texts in order. The editing text is left out when
// it is empty or, with Unique, a duplicate.
func (c *Collection) ExportAll() []string {
	skip := c.vacatable()
	out := make([]string, 0, len(c.tags))
	for i, t := range c.tags {
		if i == c.editing && skip {
			continue
		}
		out = append(out, t.Text)
	}
	return out
}

// SetUnique switches the no-repeats rule. Turning it on removes every repeat
// of an earlier text; the editing index follows its tag, or the surviving
// copy of it.
func (c *Collection) SetUnique(unique bool) {
	if unique == c.opt.Unique {
		return
	}
	c.opt.Unique = unique
	if unique {
		c.removeDuplicates()
	}
}

func (c *Collection) removeDuplicates() {
	kept := make(map[string]int, len(c.tags))
	out := make([]Tag, 0, len(c.tags))
	editing, dropped := 0, false
	for i, t := range c.tags {
		if j, dup := kept[t.Text]; dup {
			if i == c.editing {
				editing, dropped = j, true
			}
			continue
		}
		kept[t.Text] = len(out)
		if i == c.editing {
			editing = len(out)
		}
		out = append(out, t)
	}
	if len(out) == len(c.tags) {
		return
	}
	if dropped {
		c.cursor = grapheme.Count(out[editing].Text)
		c.sel = Selection{}
	}
	c.tags = out
	c.editing = editing
	c.touch()
}

func (c *Collection) touch() { c.version++ }

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("tags: %s: index %d out of range [0:%d]", op, i, n))
	}
}
