package tags

import "github.com/iw2rmb/tagpill/internal/grapheme"

// MoveCursor puts the cursor at pos, a grapheme offset in [0, len]. With
// extend the selection grows or shrinks from its anchor, the end the cursor
// is not on; without it the selection is cleared.
func (c *Collection) MoveCursor(pos int, extend bool) {
	checkIndex("MoveCursor", pos, grapheme.Count(c.EditingText())+1)
	if extend {
		anchor := c.cursor
		if !c.sel.IsEmpty() {
			switch c.cursor {
			case c.sel.Start:
				anchor = c.sel.End()
			case c.sel.End():
				anchor = c.sel.Start
			}
		}
		lo, hi := min(anchor, pos), max(anchor, pos)
		c.sel = Selection{}
		if lo < hi {
			c.sel = Selection{Start: lo, Size: hi - lo}
		}
	} else {
		c.sel = Selection{}
	}
	c.cursor = pos
	c.touch()
}

// SelectAll selects the whole editing text. The cursor does not move.
func (c *Collection) SelectAll() {
	c.sel = Selection{Start: 0, Size: grapheme.Count(c.EditingText())}
	c.touch()
}

func (c *Collection) DeselectAll() {
	c.sel = Selection{}
	c.touch()
}

func (c *Collection) HasSelection() bool { return !c.sel.IsEmpty() }

// SelectedText returns the selected part of the editing text.
func (c *Collection) SelectedText() string {
	if c.sel.IsEmpty() {
		return ""
	}
	return grapheme.Slice(c.EditingText(), c.sel.Start, c.sel.End())
}

// RemoveSelection deletes the selected text and leaves the cursor where the
// selection started.
func (c *Collection) RemoveSelection() {
	if c.sel.IsEmpty() {
		return
	}
	t := &c.tags[c.editing]
	t.Text = grapheme.Delete(t.Text, c.sel.Start, c.sel.End())
	c.cursor = c.sel.Start
	c.sel = Selection{}
	c.touch()
}

// RemoveBackwardOne deletes the selection if any, otherwise the grapheme
// before the cursor. At offset 0 without a selection it does nothing.
func (c *Collection) RemoveBackwardOne() {
	if c.HasSelection() {
		c.RemoveSelection()
		return
	}
	if c.cursor == 0 {
		return
	}
	t := &c.tags[c.editing]
	t.Text = grapheme.Delete(t.Text, c.cursor-1, c.cursor)
	c.cursor--
	c.sel = Selection{}
	c.touch()
}

// RemoveForwardOne deletes the selection if any, otherwise the grapheme after
// the cursor.
func (c *Collection) RemoveForwardOne() {
	if c.HasSelection() {
		c.RemoveSelection()
		return
	}
	t := &c.tags[c.editing]
	if c.cursor >= grapheme.Count(t.Text) {
		return
	}
	t.Text = grapheme.Delete(t.Text, c.cursor, c.cursor+1)
	c.sel = Selection{}
	c.touch()
}

// InsertText replaces the selection, if any, with s and leaves the cursor
// after the inserted text.
func (c *Collection) InsertText(s string) {
	c.RemoveSelection()
	if s == "" {
		return
	}
	t := &c.tags[c.editing]
	head := grapheme.Slice(t.Text, 0, c.cursor) + s
	t.Text = grapheme.Insert(t.Text, c.cursor, s)
	// Combining marks can merge with the cluster before them, so the cursor
	// is recounted instead of advanced by Count(s).
	c.cursor = min(grapheme.Count(head), grapheme.Count(t.Text))
	c.touch()
}
