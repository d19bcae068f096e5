// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility is present
// (e.g. a headless Linux box without xclip, xsel or wl-copy).
var ErrClipboardUnavailable = errors.New("clipboard is not available on this system")

// Clipboard receives copied keys.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last copied text in memory. Used by tests and as
// a stand-in when the system clipboard is unavailable.
type MemoryClipboard struct {
	Text   string
	Writes int
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
