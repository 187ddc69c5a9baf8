package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagpill/editor"
)

// demoConfig is the TOML file the demo loads at start and rewrites on quit.
type demoConfig struct {
	Line  editorSection `toml:"line"`
	Area  editorSection `toml:"area"`
	Style styleSection  `toml:"style"`
}

type editorSection struct {
	Tags        []string `toml:"tags"`
	Completions []string `toml:"completions,omitempty"`
	Unique      bool     `toml:"unique"`
}

type styleSection struct {
	Color        string `toml:"color,omitempty"`
	Square       bool   `toml:"square,omitempty"`
	HSpacing     *int   `toml:"h_spacing,omitempty"`
	VSpacing     *int   `toml:"v_spacing,omitempty"`
	CrossSpacing *int   `toml:"cross_spacing,omitempty"`
}

// defaultDemoConfig gives every section its own slices; toml decodes into
// existing backing arrays.
func defaultDemoConfig() demoConfig {
	langs := []string{"go", "golang", "gopher", "rust", "ruby", "python", "typescript", "zig"}
	return demoConfig{
		Line: editorSection{
			Tags:        []string{"go", "tui", "bubbletea"},
			Completions: slices.Clone(langs),
			Unique:      true,
		},
		Area: editorSection{
			Tags:        []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"},
			Completions: slices.Clone(langs),
		},
	}
}

// loadDemoConfig reads path over the defaults. A missing file is not an
// error.
func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultDemoConfig(), nil
		}
		return demoConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func saveDemoConfig(path string, cfg demoConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

func (s styleSection) styleConfig() editor.StyleConfig {
	sc := editor.DefaultStyleConfig()
	if s.Color != "" {
		sc.Color = lipgloss.Color(s.Color)
	}
	sc.Rounded = !s.Square
	setInt(&sc.Metrics.HSpacing, s.HSpacing)
	setInt(&sc.Metrics.VSpacing, s.VSpacing)
	setInt(&sc.Metrics.CrossSpacing, s.CrossSpacing)
	return sc
}

func setInt(dst *int, v *int) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}

func (s editorSection) editorConfig(mode editor.Mode, style editor.StyleConfig) editor.Config {
	return editor.Config{
		Tags:        s.Tags,
		Completions: s.Completions,
		Mode:        mode,
		Style:       style,
		Behavior:    editor.BehaviorConfig{Unique: s.Unique},
	}
}
