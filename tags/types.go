package tags

import "github.com/iw2rmb/tagpill/layout"

// Tag is one label. Rect is the last layout of the tag and is meaningless
// until the first layout pass.
type Tag struct {
	Text string
	Rect layout.Rect
}

// Selection is a span [Start, Start+Size) of the editing tag's text.
type Selection struct {
	Start int
	Size  int
}

func (s Selection) End() int      { return s.Start + s.Size }
func (s Selection) IsEmpty() bool { return s.Size <= 0 }

// Options configures a Collection.
type Options struct {
	// Unique rejects a tag whose text repeats another tag.
	Unique bool
}
