// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/domain/entity"
)

const (
	fieldPath = iota
	fieldMonitor
	fieldPosition
	fieldMargin
	fieldAutostart
	fieldSave
	fieldCount
)

// SetupModel is the interactive settings editor. custom_x and custom_y are
// carried through untouched.
type SetupModel struct {
	theme *styles.Theme
	base  entity.Settings

	path    textinput.Model
	monitor textinput.Model
	margin  textinput.Model

	modes     []entity.PlacementMode
	position  int
	autostart bool

	focus     int
	saved     bool
	cancelled bool
	result    entity.Settings
	err       error
}

// NewSetupModel creates the editor pre-filled with current.
func NewSetupModel(theme *styles.Theme, current entity.Settings) SetupModel {
	m := SetupModel{
		theme:     theme,
		base:      current,
		path:      styles.NewPathInput(theme),
		monitor:   styles.NewNumberInput(theme, "0"),
		margin:    styles.NewNumberInput(theme, "20"),
		modes:     entity.PlacementModes(),
		autostart: current.Autostart,
	}
	m.path.SetValue(current.GIFPath)
	m.monitor.SetValue(strconv.Itoa(current.Monitor))
	m.margin.SetValue(strconv.Itoa(current.Margin))
	for i, mode := range m.modes {
		if mode == current.Position {
			m.position = i
		}
	}
	m.path.Focus()
	return m
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "ctrl+s":
		return m.save()
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	switch m.focus {
	case fieldPosition:
		switch key.String() {
		case "left", "h":
			m.position = (m.position + len(m.modes) - 1) % len(m.modes)
			return m, nil
		case "right", "l", " ", "space":
			m.position = (m.position + 1) % len(m.modes)
			return m, nil
		case "enter":
			return m.moveFocus(1)
		}
		return m, nil
	case fieldAutostart:
		switch key.String() {
		case " ", "space", "x":
			m.autostart = !m.autostart
			return m, nil
		case "enter":
			return m.moveFocus(1)
		}
		return m, nil
	case fieldSave:
		if key.String() == "enter" {
			return m.save()
		}
		return m, nil
	}

	if key.String() == "enter" {
		return m.moveFocus(1)
	}
	return m.updateInput(msg)
}

func (m SetupModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldPath:
		m.path, cmd = m.path.Update(msg)
	case fieldMonitor:
		m.monitor, cmd = m.monitor.Update(msg)
	case fieldMargin:
		m.margin, cmd = m.margin.Update(msg)
	}
	return m, cmd
}

func (m SetupModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.path.Blur()
	m.monitor.Blur()
	m.margin.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case fieldPath:
		cmd = m.path.Focus()
	case fieldMonitor:
		cmd = m.monitor.Focus()
	case fieldMargin:
		cmd = m.margin.Focus()
	}
	return m, cmd
}

func (m SetupModel) save() (tea.Model, tea.Cmd) {
	settings, err := m.settings()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.result = settings
	m.saved = true
	return m, tea.Quit
}

func (m SetupModel) settings() (entity.Settings, error) {
	s := m.base
	s.GIFPath = strings.TrimSpace(m.path.Value())
	if s.GIFPath == "" {
		return s, errors.New("choose an animation file")
	}
	if info, err := os.Stat(s.GIFPath); err != nil {
		return s, fmt.Errorf("cannot read %s", s.GIFPath)
	} else if !info.Mode().IsRegular() {
		return s, fmt.Errorf("%s is not a file", s.GIFPath)
	}

	var err error
	if s.Monitor, err = atoiOr(m.monitor.Value(), 0); err != nil {
		return s, fmt.Errorf("monitor: %w", err)
	}
	if s.Margin, err = atoiOr(m.margin.Value(), 20); err != nil {
		return s, fmt.Errorf("margin: %w", err)
	}
	s.Position = m.modes[m.position]
	s.Autostart = m.autostart
	return s, nil
}

func atoiOr(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// Result returns the edited settings and whether the user saved.
func (m SetupModel) Result() (entity.Settings, bool) {
	return m.result, m.saved
}

// Cancelled reports whether the user left without saving.
func (m SetupModel) Cancelled() bool {
	return m.cancelled
}

func (m SetupModel) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.BoxHeader.Render(styles.IconImage+" desklet setup") + "\n")

	sb.WriteString(m.label(fieldPath, "Animation") + "\n")
	sb.WriteString(t.InputBox(m.path.View(), m.focus == fieldPath) + "\n")

	sb.WriteString(m.label(fieldMonitor, "Monitor") + "\n")
	sb.WriteString(t.InputBox(m.monitor.View(), m.focus == fieldMonitor) + "\n")

	sb.WriteString(m.label(fieldPosition, "Position") + "\n  ")
	modes := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.position {
			modes[i] = t.AccentBadge(string(mode))
		} else {
			modes[i] = t.MutedBadge(string(mode))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(modes, " ")) + "\n")

	sb.WriteString(m.label(fieldMargin, "Margin") + "\n")
	sb.WriteString(t.InputBox(m.margin.View(), m.focus == fieldMargin) + "\n")

	box := styles.IconCheckboxEmpty
	if m.autostart {
		box = styles.IconCheckboxChecked
	}
	sb.WriteString(m.label(fieldAutostart, box+" Start at login") + "\n\n")

	save := t.MutedBadge("Save")
	if m.focus == fieldSave {
		save = t.AccentBadge("Save")
	}
	sb.WriteString("  " + save + "\n")

	if m.err != nil {
		sb.WriteString("\n" + t.ErrorStyle.Render(styles.IconX+" "+m.err.Error()) + "\n")
	}

	sb.WriteString("\n" +
		t.HelpKey.Render("tab") + t.HelpDesc.Render(" next  ") +
		t.HelpKey.Render("←/→") + t.HelpDesc.Render(" position  ") +
		t.HelpKey.Render("space") + t.HelpDesc.Render(" toggle  ") +
		t.HelpKey.Render("ctrl+s") + t.HelpDesc.Render(" save  ") +
		t.HelpKey.Render("esc") + t.HelpDesc.Render(" cancel") + "\n")

	return t.Box.Render(sb.String())
}

func (m SetupModel) label(field int, text string) string {
	if m.focus == field {
		return m.theme.Highlight.Render(styles.IconCursor + " " + text)
	}
	return m.theme.Subtitle.Render("  " + text)
}
