package editor

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagpill/layout"
)

const defaultFocusDebounce = time.Millisecond

// StyleConfig is the look of the pills. Replacing it relays out every tag.
type StyleConfig struct {
	// Metrics in terminal cells. Zero means layout.CellMetrics.
	Metrics layout.Metrics
	// Color fills the pills. Nil means DefaultPillColor.
	Color lipgloss.TerminalColor
	// Rounded draws half-disc caps in the outer padding cells.
	Rounded bool
	Style   Style
}

// BehaviorConfig holds the editing rules.
type BehaviorConfig struct {
	// Unique rejects a tag whose text repeats another one. Turning it on
	// removes existing repeats, keeping the first.
	Unique bool
	// RestoreCursorPositionOnFocusClick ignores the press that focuses the
	// editor entirely, so the caret stays where it was before blur.
	RestoreCursorPositionOnFocusClick bool
}

var DefaultPillColor lipgloss.TerminalColor = lipgloss.Color("61")

func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Metrics: layout.CellMetrics(),
		Color:   DefaultPillColor,
		Rounded: true,
		Style:   DefaultStyle(),
	}
}

func DefaultBehaviorConfig() BehaviorConfig {
	return BehaviorConfig{Unique: true}
}

// Config configures the editor Model.
type Config struct {
	// Initial tags, loaded like SetTags.
	Tags []string
	// Completion candidates matched against the editing text.
	Completions []string

	Mode     Mode
	Style    StyleConfig
	Behavior BehaviorConfig

	KeyMap                   KeyMap
	CompletionKeyMap         CompletionKeyMap
	CompletionFilter         CompletionFilter
	CompletionMaxVisibleRows int
	CompletionMaxWidth       int

	// ReadOnly allows moving between tags and selecting but no edits, and
	// hides the delete glyphs.
	ReadOnly bool
	// NoCross hides the delete glyphs and their hit regions.
	NoCross bool

	Clipboard Clipboard

	// FocusDebounce is how long after gaining focus a press is treated as
	// the focusing click. Zero means one millisecond.
	FocusDebounce time.Duration
	// Now is the clock for FocusDebounce. Nil means time.Now.
	Now func() time.Time

	// Logger receives debug records for structural edits. Nil discards.
	Logger *slog.Logger

	// OnTagsEdited is called after every user-driven change, never after
	// SetTags.
	OnTagsEdited func(TagsEvent)
}

func normalizeStyleConfig(sc StyleConfig) StyleConfig {
	if sc.Metrics == (layout.Metrics{}) {
		sc.Metrics = layout.CellMetrics()
	}
	if sc.Color == nil {
		sc.Color = DefaultPillColor
	}
	if reflect.DeepEqual(sc.Style, Style{}) {
		sc.Style = DefaultStyle()
	}
	return sc
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizeFocusDebounce(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultFocusDebounce
	}
	return d
}

func normalizeConfig(cfg Config) Config {
	cfg.Style = normalizeStyleConfig(cfg.Style)
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.CompletionKeyMap = normalizeCompletionKeyMap(cfg.CompletionKeyMap)
	cfg.CompletionMaxVisibleRows = normalizeCompletionMaxVisibleRows(cfg.CompletionMaxVisibleRows)
	cfg.CompletionMaxWidth = normalizeCompletionMaxWidth(cfg.CompletionMaxWidth)
	cfg.FocusDebounce = normalizeFocusDebounce(cfg.FocusDebounce)
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
