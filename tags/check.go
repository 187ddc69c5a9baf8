package tags

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/tagpill/internal/grapheme"
)

var (
	ErrNoTags         = errors.New("tags: collection is empty")
	ErrEditingIndex   = errors.New("tags: editing index out of range")
	ErrEmptyCommitted = errors.New("tags: empty tag outside editing")
	ErrDuplicate      = errors.New("tags: duplicate tag")
	ErrCursor         = errors.New("tags: cursor out of range")
	ErrSelection      = errors.New("tags: selection out of range")
)

// Check verifies the collection invariants and returns the first violation.
func (c *Collection) Check() error {
	if len(c.tags) == 0 {
		return ErrNoTags
	}
	if c.editing < 0 || c.editing >= len(c.tags) {
		return fmt.Errorf("%w: %d of %d", ErrEditingIndex, c.editing, len(c.tags))
	}
	for i, t := range c.tags {
		if t.Text == "" && i != c.editing {
			return fmt.Errorf("%w: index %d", ErrEmptyCommitted, i)
		}
	}
	if c.opt.Unique {
		first := make(map[string]int, len(c.tags))
		for i, t := range c.tags {
			j, seen := first[t.Text]
			if !seen {
				first[t.Text] = i
				continue
			}
			// The editing tag may repeat one committed tag while it is
			// being typed.
			if (i == c.editing || j == c.editing) && countText(c.tags, t.Text) == 2 {
				continue
			}
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicate, t.Text, j, i)
		}
	}
	n := grapheme.Count(c.EditingText())
	if c.cursor < 0 || c.cursor > n {
		return fmt.Errorf("%w: %d of %d", ErrCursor, c.cursor, n)
	}
	if c.sel.Start < 0 || c.sel.Size < 0 || c.sel.End() > n {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrSelection, c.sel.Start, c.sel.End(), n)
	}
	return nil
}

func countText(tags []Tag, text string) int {
	n := 0
	for _, t := range tags {
		if t.Text == text {
			n++
		}
	}
	return n
}
