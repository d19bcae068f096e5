// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/core/session"
	"github.com/toeirei/keysmith/internal/i18n"
	"github.com/toeirei/keysmith/uiadapters"
)

// Focus order: the four class toggles, Mix, then the two number inputs.
const (
	focusMix    = 4
	focusLength = 5
	focusParts  = 6
	focusCount  = 7
)

var toggleClasses = []keygen.CharacterClass{
	keygen.LowercaseLetter,
	keygen.UppercaseLetter,
	keygen.SpecialCharacter,
	keygen.Digit,
}

// Model is the single-screen generator view.
type Model struct {
	session *session.Session
	form    session.Form
	clip    uiadapters.Clipboard

	focus  int
	length textinput.Model
	parts  textinput.Model

	keys KeyMap
	help help.Model

	status    string
	statusErr bool
	selected  bool
}

// New builds the model around an existing session so history survives for
// the life of the process.
func New(s *session.Session, form session.Form, clip uiadapters.Clipboard) Model {
	if clip == nil {
		clip = &uiadapters.MemoryClipboard{}
	}
	m := Model{
		session: s,
		form:    form,
		clip:    clip,
		length:  newNumberInput(form.SegmentLength),
		parts:   newNumberInput(form.SegmentCount),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	return m
}

func newNumberInput(v int) textinput.Model {
	t := textinput.New()
	t.Prompt = ""
	t.CharLimit = 3
	t.Width = 4
	t.Placeholder = "0"
	t.Cursor.Style = focusedItemStyle
	t.SetValue(strconv.Itoa(v))
	return t
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inputFocused() && isInputKey(msg) {
			var cmd tea.Cmd
			if m.focus == focusLength {
				m.length, cmd = m.length.Update(msg)
			} else {
				m.parts, cmd = m.parts.Update(msg)
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next):
			return m, m.focusTo((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.focusTo((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(m.focus)
		case key.Matches(msg, m.keys.Pick):
			idx, _ := strconv.Atoi(msg.String())
			m.toggle(idx - 1)
		case key.Matches(msg, m.keys.Generate):
			m.generate()
		case key.Matches(msg, m.keys.Older):
			m.older()
		case key.Matches(msg, m.keys.Newer):
			m.newer()
		case key.Matches(msg, m.keys.Copy):
			m.copyOutput()
		case key.Matches(msg, m.keys.Delete):
			m.deleteOutput()
		case key.Matches(msg, m.keys.SelectAll):
			m.selectAll()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		}
	}
	return m, nil
}

func (m Model) inputFocused() bool {
	return m.focus == focusLength || m.focus == focusParts
}

// isInputKey reports whether msg edits a number field. Letters never do, so
// single-letter shortcuts keep working while a field is focused.
func isInputKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

func (m *Model) focusTo(i int) tea.Cmd {
	m.focus = i
	m.length.Blur()
	m.parts.Blur()
	switch i {
	case focusLength:
		return m.length.Focus()
	case focusParts:
		return m.parts.Focus()
	}
	return nil
}

func (m *Model) toggle(i int) {
	switch {
	case i == focusMix:
		m.form.Mix = !m.form.Mix
	case i >= 0 && i < len(toggleClasses):
		m.form.Toggle(toggleClasses[i])
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

// syncDimensions copies the number fields into the form. An empty field
// counts as zero, which the generator rejects with the matching warning.
func (m *Model) syncDimensions() bool {
	for _, f := range []struct {
		input *textinput.Model
		dst   *int
		label string
	}{
		{&m.length, &m.form.SegmentLength, i18n.T("tui.length")},
		{&m.parts, &m.form.SegmentCount, i18n.T("tui.parts")},
	} {
		v := strings.TrimSpace(f.input.Value())
		if v == "" {
			*f.dst = 0
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			m.setStatus(i18n.T("tui.invalid_number", f.label), true)
			return false
		}
		*f.dst = n
	}
	return true
}

func (m *Model) generate() {
	if !m.syncDimensions() {
		return
	}
	if _, err := m.session.Generate(m.form.Request()); err != nil {
		m.setStatus(uiadapters.WarningFor(err), true)
		return
	}
	m.selected = false
	m.setStatus(i18n.T("tui.generated"), false)
}

func (m *Model) older() {
	if _, ok := m.session.Previous(); !ok {
		m.historyBoundary(i18n.T("tui.history_oldest"))
		return
	}
	m.selected = false
	m.historyPosition()
}

func (m *Model) newer() {
	if _, ok := m.session.Next(); !ok {
		m.historyBoundary(i18n.T("tui.history_newest"))
		return
	}
	m.selected = false
	m.historyPosition()
}

func (m *Model) historyBoundary(msg string) {
	if m.session.History().Len() == 0 {
		m.setStatus(i18n.T("tui.history_empty"), false)
		return
	}
	m.setStatus(msg, false)
}

func (m *Model) historyPosition() {
	h := m.session.History()
	m.setStatus(i18n.T("tui.history_position", h.Cursor()+1, h.Len()), false)
}

func (m *Model) copyOutput() {
	out := m.session.Output()
	if strings.TrimSpace(out) == "" {
		m.setStatus(i18n.T("copy.nothing"), false)
		return
	}
	if err := m.clip.WriteAll(out); err != nil {
		m.setStatus(i18n.T("copy.failed", err), true)
		return
	}
	m.selected = true
	m.setStatus(i18n.T("copy.success"), false)
}

func (m *Model) deleteOutput() {
	m.session.Clear()
	m.selected = false
	m.setStatus(i18n.T("tui.cleared"), false)
}

func (m *Model) selectAll() {
	if strings.TrimSpace(m.session.Output()) == "" {
		return
	}
	m.selected = true
	m.setStatus(i18n.T("tui.selected"), false)
}

func (m *Model) reset() {
	m.form.Reset()
	m.length.SetValue(strconv.Itoa(m.form.SegmentLength))
	m.session.Clear()
	m.selected = false
	m.setStatus(i18n.T("tui.reset"), false)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(i18n.T("tui.classes_title")))
	b.WriteString("\n")

	for i, c := range toggleClasses {
		b.WriteString(m.renderToggle(i, uiadapters.ClassLabel(c), m.form.Selected(c), !m.form.ClassTogglesEnabled()))
	}
	b.WriteString(m.renderToggle(focusMix, i18n.T("class.mix"), m.form.Mix, false))
	b.WriteString("\n")

	b.WriteString(m.renderField(focusLength, i18n.T("tui.length"), m.length))
	b.WriteString("   ")
	b.WriteString(m.renderField(focusParts, i18n.T("tui.parts"), m.parts))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render(i18n.T("tui.output_title")))
	b.WriteString("\n")
	b.WriteString(outputStyle.Render(m.renderOutput()))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderToggle(i int, label string, on, disabled bool) string {
	cursor := "  "
	if m.focus == i {
		cursor = "> "
	}
	box := "[ ]"
	if on {
		box = "[x]"
	}
	line := cursor + box + " " + strconv.Itoa(i+1) + " " + label

	style := itemStyle
	switch {
	case disabled:
		style = disabledItemStyle
	case m.focus == i:
		style = focusedItemStyle
	}
	return style.Render(line) + "\n"
}

func (m Model) renderField(i int, label string, input textinput.Model) string {
	style := itemStyle
	if m.focus == i {
		style = focusedItemStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label+": "), input.View())
}

func (m Model) renderOutput() string {
	out := m.session.Output()
	if out == "" {
		return placeholderStyle.Render(i18n.T("tui.output_placeholder"))
	}
	if m.selected {
		return selectedOutputStyle.Render(out)
	}
	return out
}
