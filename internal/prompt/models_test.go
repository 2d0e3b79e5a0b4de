package prompt

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel(t *testing.T) {
	t.Run("enter picks the highlighted option", func(t *testing.T) {
		m := newSelectModel("Select a class", []string{"Barbarian", "Bard", "Cleric"})

		m.Update(key(tea.KeyDown))
		m.Update(key(tea.KeyDown))
		_, cmd := m.Update(key(tea.KeyEnter))

		require.NotNil(t, cmd)
		assert.Equal(t, 2, m.chosen)
		assert.False(t, m.canceled())
		assert.Contains(t, m.View(), "Cleric")
	})

	t.Run("first option by default", func(t *testing.T) {
		m := newSelectModel("Select", []string{"Calculate HP", "Calculate AC"})

		m.Update(key(tea.KeyEnter))
		assert.Equal(t, 0, m.chosen)
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := newSelectModel("Select", []string{"a"})

		m.Update(key(tea.KeyEsc))
		assert.True(t, m.canceled())
		assert.Equal(t, "", m.View())
	})
}

func TestInputModel(t *testing.T) {
	t.Run("keeps asking until the value parses", func(t *testing.T) {
		var parsed int
		m := newInputModel("Level:", func(s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return errors.InvalidArgumentf("%q is not a number", s)
			}
			parsed = v
			return nil
		})

		m.Update(runes("x"))
		_, cmd := m.Update(key(tea.KeyEnter))
		assert.Nil(t, cmd)
		assert.False(t, m.done)
		assert.Contains(t, m.View(), `"x" is not a number`)

		m.input.SetValue("7")
		m.Update(key(tea.KeyEnter))
		assert.True(t, m.done)
		assert.Nil(t, m.err)
		assert.Equal(t, 7, parsed)
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		m := newInputModel("Name", func(string) error { return nil })

		m.Update(key(tea.KeyCtrlC))
		assert.True(t, m.canceled())
	})
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected bool
	}{
		{name: "y", msg: runes("y"), expected: true},
		{name: "Y", msg: runes("Y"), expected: true},
		{name: "n", msg: runes("n"), expected: false},
		{name: "enter defaults to no", msg: key(tea.KeyEnter), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newConfirmModel("Are you using a shield?")

			m.Update(tt.msg)
			assert.True(t, m.done)
			assert.Equal(t, tt.expected, m.answer)
		})
	}

	t.Run("other keys are ignored", func(t *testing.T) {
		m := newConfirmModel("Shield?")

		m.Update(runes("q"))
		assert.False(t, m.done)
		assert.Contains(t, m.View(), "(y/N)")
	})
}

type fakeAsker struct {
	index  int
	lines  []string
	answer bool
	err    error
}

func (f *fakeAsker) SelectIndex(_ string, _ []string) (int, error) { return f.index, f.err }

func (f *fakeAsker) InputLine(_ string, validate func(string) error) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for _, line := range f.lines {
		if validate(line) == nil {
			return line, nil
		}
	}
	return "", errors.Internal("ran out of lines")
}

func (f *fakeAsker) Confirm(_ string) (bool, error) { return f.answer, f.err }

func TestSelect(t *testing.T) {
	t.Run("returns the option at the chosen index", func(t *testing.T) {
		got, err := Select(&fakeAsker{index: 1}, "Pick", []int{4, 6, 8})
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("no options", func(t *testing.T) {
		_, err := Select(New(), "Pick", []string{})
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := Select(&fakeAsker{index: 3}, "Pick", []int{4})
		assert.True(t, errors.IsInternal(err))
	})

	t.Run("cancel passes through", func(t *testing.T) {
		_, err := Select(&fakeAsker{err: ErrCanceled}, "Pick", []int{4})
		assert.True(t, errors.IsCanceled(err))
	})
}

func TestInputMap(t *testing.T) {
	asker := &fakeAsker{lines: []string{"abc", "-", "12"}}

	got, err := InputMap(asker, "Level:", strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestInput(t *testing.T) {
	got, err := Input(&fakeAsker{lines: []string{"Gunslinger"}}, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Gunslinger", got)
}

func TestErrCanceled(t *testing.T) {
	assert.True(t, errors.IsCanceled(ErrCanceled))
	assert.Equal(t, 0, errors.ExitCode(errors.Wrap(ErrCanceled, "menu")))
}
