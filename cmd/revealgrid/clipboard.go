package main

import "github.com/atotto/clipboard"

// systemClipboard adapts the OS clipboard to table.Clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// available reports whether a clipboard backend exists on this system.
func (systemClipboard) available() bool { return !clipboard.Unsupported }
