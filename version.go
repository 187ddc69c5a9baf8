// Package tagpill is an inline tag editor for Bubble Tea programs.
//
// The editing engine lives in the tags and layout packages; the editor
// package wraps them into a Bubble Tea component.
package tagpill

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag for Version.
func VersionTag() string {
	return "v" + Version()
}
