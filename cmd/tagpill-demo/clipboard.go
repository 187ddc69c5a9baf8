package main

import "github.com/atotto/clipboard"

// systemClipboard is the editor.Clipboard of the host OS.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }
