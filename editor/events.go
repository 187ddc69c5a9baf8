package editor

import "github.com/iw2rmb/tagpill/tags"

// TagsEvent describes the collection after a user-driven change.
type TagsEvent struct {
	Version uint64
	// Tags is what Model.Tags returns.
	Tags []string
	// Editing is the index of the editing tag in the full list, which may
	// include an empty or duplicate editing tag that Tags leaves out.
	Editing int
	Text    string
}

func buildTagsEvent(c *tags.Collection) TagsEvent {
	return TagsEvent{
		Version: c.Version(),
		Tags:    c.ExportAll(),
		Editing: c.EditingIndex(),
		Text:    c.EditingText(),
	}
}
