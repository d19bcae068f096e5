// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keysmith/internal/i18n"
)

type KeyMap struct {
	Toggle    key.Binding
	Pick      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Generate  key.Binding
	Older     key.Binding
	Newer     key.Binding
	Copy      key.Binding
	Delete    key.Binding
	SelectAll key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Generate, km.Older, km.Newer, km.Copy, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Toggle, km.Pick, km.Next, km.Prev},
		{km.Generate, km.Older, km.Newer},
		{km.Copy, km.Delete, km.SelectAll, km.Reset},
		{km.Help, km.Quit},
	}
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}

// DefaultKeyMap builds the bindings with help text in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", i18n.T("help.toggle")),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", i18n.T("help.toggle")),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("help.focus")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", i18n.T("help.focus")),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter", "g"),
			key.WithHelp("enter", i18n.T("help.generate")),
		),
		Older: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", i18n.T("help.older")),
		),
		Newer: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", i18n.T("help.newer")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("help.copy")),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", i18n.T("help.delete")),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a", "ctrl+a"),
			key.WithHelp("a", i18n.T("help.select_all")),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T("help.reset")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.more")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}
