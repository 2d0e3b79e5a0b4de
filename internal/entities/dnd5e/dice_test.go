package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

func TestParseHitDice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected dnd5e.HitDice
	}{
		{name: "d prefix", input: "d8", expected: dnd5e.D8},
		{name: "bare number", input: "8", expected: dnd5e.D8},
		{name: "upper case prefix", input: "D12", expected: dnd5e.D12},
		{name: "surrounding whitespace", input: "  d20 ", expected: dnd5e.D20},
		{name: "d4", input: "4", expected: dnd5e.D4},
		{name: "custom die", input: "7", expected: dnd5e.HitDice(7)},
		{name: "custom die with prefix", input: "d100", expected: dnd5e.HitDice(100)},
		{name: "leading zeros", input: "008", expected: dnd5e.D8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dice, err := dnd5e.ParseHitDice(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dice)
		})
	}
}

func TestParseHitDice_Custom(t *testing.T) {
	dice, err := dnd5e.ParseHitDice("7")
	require.NoError(t, err)

	other, err := dnd5e.OtherDice(7)
	require.NoError(t, err)

	assert.Equal(t, other, dice)
	assert.False(t, dice.IsStandard())
	assert.Equal(t, 7, dice.Faces())
	assert.Equal(t, "d7", dice.String())
}

func TestParseHitDice_Invalid(t *testing.T) {
	inputs := []string{"abc", "-1", "0", "d0", "", "d", "+8", "d-8", "8.5", "2d6", "d 8", "99999999999999999999"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := dnd5e.ParseHitDice(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, dnd5e.ErrInvalidDice)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Equal(t, input, errors.GetMeta(err)["input"])
		})
	}
}

func TestOtherDice(t *testing.T) {
	t.Run("canonical face count yields the named die", func(t *testing.T) {
		dice, err := dnd5e.OtherDice(10)
		require.NoError(t, err)
		assert.Equal(t, dnd5e.D10, dice)
		assert.True(t, dice.IsStandard())
	})

	t.Run("non-positive face count fails", func(t *testing.T) {
		_, err := dnd5e.OtherDice(0)
		assert.ErrorIs(t, err, dnd5e.ErrInvalidDice)

		_, err = dnd5e.OtherDice(-3)
		assert.ErrorIs(t, err, dnd5e.ErrInvalidDice)
	})
}

func TestStandardHitDice(t *testing.T) {
	dice := dnd5e.StandardHitDice()
	assert.Equal(t, []dnd5e.HitDice{dnd5e.D4, dnd5e.D6, dnd5e.D8, dnd5e.D10, dnd5e.D12, dnd5e.D20}, dice)

	// callers get their own copy
	dice[0] = dnd5e.D20
	assert.Equal(t, dnd5e.D4, dnd5e.StandardHitDice()[0])
}
