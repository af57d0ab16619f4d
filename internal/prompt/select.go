package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a single-choice list. Navigation wraps at both ends.
type selectModel struct {
	title    string
	options  []Option
	index    int
	done     bool
	canceled bool
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.options)
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit

	case "up", "k":
		m.index = (m.index + n - 1) % n

	case "down", "j":
		m.index = (m.index + 1) % n

	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		line := "  " + opt.Label
		if i == m.index {
			line = styleSelected.Render("> " + opt.Label)
		}
		if opt.Description != "" {
			line += styleHelp.Render("  " + opt.Description)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + styleHelp.Render("Use ↑/↓ to navigate, Enter to select, Esc to cancel."))
	return b.String()
}
