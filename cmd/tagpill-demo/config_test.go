package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/tagpill/editor"
)

func TestLoadDemoConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadDemoConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultDemoConfig(), cfg)
}

func TestLoadDemoConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadDemoConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultDemoConfig(), cfg)
}

func TestLoadDemoConfig_SectionsDoNotShareCompletions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.toml")
	require.NoError(t, os.WriteFile(path, []byte("[area]\ncompletions = [\"xray\"]\n"), 0o644))

	cfg, err := loadDemoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"xray"}, cfg.Area.Completions)
	assert.Equal(t, defaultDemoConfig().Line.Completions, cfg.Line.Completions)
}

func TestLoadDemoConfig_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[line]
tags = ["a", "b"]
unique = false

[area]
tags = ["x"]
completions = ["xray", "xenon"]
unique = true

[style]
color = "205"
square = true
h_spacing = 2
`), 0o644))

	cfg, err := loadDemoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Line.Tags)
	assert.False(t, cfg.Line.Unique)
	assert.Equal(t, defaultDemoConfig().Line.Completions, cfg.Line.Completions)
	assert.Equal(t, []string{"x"}, cfg.Area.Tags)
	assert.Equal(t, []string{"xray", "xenon"}, cfg.Area.Completions)
	assert.True(t, cfg.Area.Unique)

	sc := cfg.Style.styleConfig()
	assert.Equal(t, lipgloss.Color("205"), sc.Color)
	assert.False(t, sc.Rounded)
	assert.Equal(t, 2, sc.Metrics.HSpacing)
	assert.Equal(t, editor.DefaultStyleConfig().Metrics.CrossSpacing, sc.Metrics.CrossSpacing)
}

func TestLoadDemoConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[line\ntags = 1"), 0o644))

	_, err := loadDemoConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSaveDemoConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.toml")
	want := defaultDemoConfig()
	want.Line.Tags = []string{"one", "two words"}
	want.Area.Tags = []string{}

	require.NoError(t, saveDemoConfig(path, want))
	got, err := loadDemoConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want.Line, got.Line)
	assert.Empty(t, got.Area.Tags)
}

func TestEditorConfig(t *testing.T) {
	sec := editorSection{Tags: []string{"a"}, Completions: []string{"ab"}, Unique: true}
	cfg := sec.editorConfig(editor.ModeArea, editor.DefaultStyleConfig())
	assert.Equal(t, editor.ModeArea, cfg.Mode)
	assert.True(t, cfg.Behavior.Unique)
	assert.Equal(t, []string{"a"}, cfg.Tags)
	assert.Equal(t, []string{"ab"}, cfg.Completions)
}
