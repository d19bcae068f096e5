// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keysmith/core/session"
	"github.com/toeirei/keysmith/uiadapters"
)

// Run starts the TUI on the alternate screen and blocks until the user quits.
func Run(s *session.Session, form session.Form, clip uiadapters.Clipboard) error {
	_, err := tea.NewProgram(
		New(s, form, clip),
		tea.WithAltScreen(),
	).Run()
	return err
}
