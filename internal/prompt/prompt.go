// Package prompt implements the interactive questions init asks when a
// required choice is absent from flags. Each prompt is a small bubbletea
// model run to completion on stderr; Esc and ctrl+c abort the whole run
// with ErrCanceled.
package prompt

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
)

// Option is one selectable choice in a Select or MultiSelect prompt.
type Option struct {
	// Value is returned on selection; it matches the flag spelling.
	Value string

	// Label is the display name.
	Label string

	// Description is an optional one-line explanation rendered dimmed.
	Description string
}

// Prompt styles reuse the output palette so prompts match the run summary.
var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(output.ColorCyan).Bold(true)
	styleMark     = lipgloss.NewStyle().Foreground(output.ColorGreen)
	styleHelp     = lipgloss.NewStyle().Faint(true)
)

// Select asks a single-choice question and returns the Value of the chosen
// option.
func Select(title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.NewValidationError("prompt has no options", "", "", "")
	}
	final, err := run(selectModel{title: title, options: options})
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.canceled {
		return "", errors.ErrCanceled
	}
	return m.options[m.index].Value, nil
}

// MultiSelect asks a multiple-choice question. Space toggles the highlighted
// option, Enter confirms. Values listed in preselected start toggled on.
// Confirming with nothing toggled returns an empty slice; callers decide the
// fallback.
func MultiSelect(title string, options []Option, preselected []string) ([]string, error) {
	if len(options) == 0 {
		return nil, errors.NewValidationError("prompt has no options", "", "", "")
	}
	final, err := run(newMultiSelectModel(title, options, preselected))
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.canceled {
		return nil, errors.ErrCanceled
	}
	return m.values(), nil
}

// Input asks for a free-form line of text and returns it with surrounding
// whitespace trimmed.
func Input(title, placeholder string) (string, error) {
	final, err := run(newInputModel(title, placeholder))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.canceled {
		return "", errors.ErrCanceled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// run executes a model on stderr so prompts never pollute piped stdout.
func run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
}
