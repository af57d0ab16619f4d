package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// multiSelectModel is a checkbox list. Space toggles the highlighted entry,
// Enter confirms whatever is checked.
type multiSelectModel struct {
	title    string
	options  []Option
	checked  map[int]bool
	index    int
	done     bool
	canceled bool
}

func newMultiSelectModel(title string, options []Option, preselected []string) multiSelectModel {
	checked := make(map[int]bool, len(preselected))
	for i, opt := range options {
		for _, v := range preselected {
			if opt.Value == v {
				checked[i] = true
			}
		}
	}
	return multiSelectModel{title: title, options: options, checked: checked}
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case " ":
		m.checked[m.index] = !m.checked[m.index]

	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		mark := "[ ]"
		if m.checked[i] {
			mark = styleMark.Render("[x]")
		}
		line := "  " + mark + " " + opt.Label
		if i == m.index {
			line = styleSelected.Render("> ") + mark + " " + opt.Label
		}
		if opt.Description != "" {
			line += styleHelp.Render("  " + opt.Description)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + styleHelp.Render("Use ↑/↓ to navigate, Space to toggle, Enter to confirm, Esc to cancel."))
	return b.String()
}

// values returns the checked option values in display order.
func (m multiSelectModel) values() []string {
	out := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		if m.checked[i] {
			out = append(out, opt.Value)
		}
	}
	return out
}
