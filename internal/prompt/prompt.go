// Package prompt provides interactive terminal prompts built on bubbletea.
//
// Every prompt returns ErrCanceled when the user presses esc or ctrl+c.
package prompt

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// ErrCanceled is returned when the user abandons a prompt
var ErrCanceled = errors.Canceled("prompt canceled")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))
)

// Prompter runs prompts against a terminal
type Prompter struct {
	input  io.Reader
	output io.Writer
}

// Option configures a Prompter
type Option func(*Prompter)

// WithInput reads key presses from r instead of stdin
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		p.input = r
	}
}

// WithOutput renders to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		p.output = w
	}
}

// New creates a Prompter on stdin and stdout
func New(opts ...Option) *Prompter {
	p := &Prompter{
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Asker is the set of primitive prompts the helpers are built on
type Asker interface {
	// SelectIndex returns the index of the chosen label
	SelectIndex(title string, labels []string) (int, error)
	// InputLine returns the first line for which validate succeeds
	InputLine(title string, validate func(string) error) (string, error)
	// Confirm returns the answer to a yes or no question
	Confirm(title string) (bool, error)
}

var _ Asker = (*Prompter)(nil)

// result is implemented by every prompt model
type result interface {
	tea.Model
	canceled() bool
}

func (p *Prompter) run(m result) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithInput(p.input), tea.WithOutput(p.output))

	final, err := program.Run()
	if err != nil {
		return nil, errors.Wrap(err, "prompt failed")
	}
	if r, ok := final.(result); ok && r.canceled() {
		return nil, ErrCanceled
	}
	return final, nil
}

// SelectIndex shows labels as a list and returns the chosen index
func (p *Prompter) SelectIndex(title string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, errors.InvalidArgumentf("no options for %q", title)
	}

	final, err := p.run(newSelectModel(title, labels))
	if err != nil {
		return -1, err
	}
	return final.(*selectModel).chosen, nil
}

// InputLine reads a line, showing the validation error and asking again until it passes
func (p *Prompter) InputLine(title string, validate func(string) error) (string, error) {
	final, err := p.run(newInputModel(title, validate))
	if err != nil {
		return "", err
	}
	return final.(*inputModel).input.Value(), nil
}

// Confirm asks a yes or no question; enter alone answers no
func (p *Prompter) Confirm(title string) (bool, error) {
	final, err := p.run(newConfirmModel(title))
	if err != nil {
		return false, err
	}
	return final.(*confirmModel).answer, nil
}

// Select asks the user to pick one of options, labelled with fmt.Sprint
func Select[T any](a Asker, title string, options []T) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, errors.InvalidArgumentf("no options for %q", title)
	}

	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = fmt.Sprint(option)
	}

	index, err := a.SelectIndex(title, labels)
	if err != nil {
		return zero, err
	}
	if index < 0 || index >= len(options) {
		return zero, errors.Internalf("selection %d out of range for %q", index, title)
	}
	return options[index], nil
}

// Input asks for a line of free text
func Input(a Asker, title string) (string, error) {
	return a.InputLine(title, func(string) error { return nil })
}

// InputMap asks for a line of text and parses it, asking again until parse succeeds
func InputMap[T any](a Asker, title string, parse func(string) (T, error)) (T, error) {
	var parsed T
	_, err := a.InputLine(title, func(s string) error {
		v, err := parse(s)
		if err != nil {
			return err
		}
		parsed = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return parsed, nil
}
