// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().Bold(true)

	itemStyle         = lipgloss.NewStyle()
	focusedItemStyle  = lipgloss.NewStyle().Foreground(colorHighlight)
	disabledItemStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	selectedOutputStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorHighlight)

	placeholderStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)
