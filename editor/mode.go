package editor

import "github.com/iw2rmb/tagpill/layout"

// Mode selects how pills flow.
//
// ModeLine places every pill on one row and scrolls horizontally.
// ModeArea wraps pills onto rows and scrolls vertically.
type Mode int

const (
	ModeLine Mode = iota
	ModeArea
)

func (m Mode) String() string {
	switch m {
	case ModeArea:
		return "area"
	default:
		return "line"
	}
}

// ParseMode maps "line" and "area" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "line", "":
		return ModeLine, true
	case "area":
		return ModeArea, true
	}
	return ModeLine, false
}

func (m Mode) flow() layout.Flow {
	if m == ModeArea {
		return layout.WrapFlow{}
	}
	return layout.LineFlow{}
}
