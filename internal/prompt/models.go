package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

const listWidth = 50

type option string

func (o option) Title() string       { return string(o) }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return string(o) }

type selectModel struct {
	title     string
	list      list.Model
	chosen    int
	done      bool
	aborted bool
}

func newSelectModel(title string, labels []string) *selectModel {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = option(label)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)

	l := list.New(items, delegate, listWidth, len(items)+2)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(items) > 20)
	if len(items) > 20 {
		l.SetHeight(22)
	}

	return &selectModel{title: title, list: l, chosen: -1}
}

func (m *selectModel) Init() tea.Cmd { return nil }

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.chosen = m.list.Index()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *selectModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), m.list.SelectedItem().FilterValue())
	}
	if m.aborted {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" + m.list.View() + "\n" + hintStyle.Render("↑/↓ to move, enter to select, esc to quit") + "\n"
}

func (m *selectModel) canceled() bool { return m.aborted }

type inputModel struct {
	title     string
	input     textinput.Model
	validate  func(string) error
	err       error
	done      bool
	aborted bool
}

func newInputModel(title string, validate func(string) error) *inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = listWidth

	return &inputModel{title: title, input: ti, validate: validate}
}

func (m *inputModel) Init() tea.Cmd { return textinput.Blink }

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.validate(m.input.Value()); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), m.input.Value())
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(errors.GetMessage(m.err)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *inputModel) canceled() bool { return m.aborted }

type confirmModel struct {
	title     string
	answer    bool
	done      bool
	aborted bool
}

func newConfirmModel(title string) *confirmModel {
	return &confirmModel{title: title}
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}
		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), answer)
	}
	if m.aborted {
		return ""
	}
	return titleStyle.Render(m.title) + " " + hintStyle.Render("(y/N)") + "\n"
}

func (m *confirmModel) canceled() bool { return m.aborted }
