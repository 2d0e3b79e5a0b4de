package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

func TestArmor_Table(t *testing.T) {
	tests := []struct {
		armor  dnd5e.Armor
		baseAC int
		policy dnd5e.DexPolicy
	}{
		{dnd5e.ArmorNone, 10, dnd5e.DexUnlimited},
		{dnd5e.ArmorLeather, 11, dnd5e.DexUnlimited},
		{dnd5e.ArmorStuddedLeather, 12, dnd5e.DexUnlimited},
		{dnd5e.ArmorHide, 12, dnd5e.DexCapped},
		{dnd5e.ArmorChainShirt, 13, dnd5e.DexCapped},
		{dnd5e.ArmorScaleMail, 14, dnd5e.DexCapped},
		{dnd5e.ArmorBreastplate, 14, dnd5e.DexCapped},
		{dnd5e.ArmorHalfPlate, 15, dnd5e.DexCapped},
		{dnd5e.ArmorRingMail, 14, dnd5e.DexNone},
		{dnd5e.ArmorChainMail, 16, dnd5e.DexNone},
		{dnd5e.ArmorSplint, 17, dnd5e.DexNone},
		{dnd5e.ArmorPlate, 18, dnd5e.DexNone},
	}

	require.Len(t, dnd5e.AllArmor(), len(tests))
	for i, tt := range tests {
		t.Run(string(tt.armor), func(t *testing.T) {
			assert.Equal(t, tt.armor, dnd5e.AllArmor()[i], "menu order")
			assert.True(t, tt.armor.Valid())
			assert.Equal(t, tt.baseAC, tt.armor.BaseAC())
			assert.Equal(t, tt.policy, tt.armor.DexPolicy())
		})
	}
}

func TestParseArmor(t *testing.T) {
	tests := []struct {
		input    string
		expected dnd5e.Armor
	}{
		{"plate", dnd5e.ArmorPlate},
		{"Chain Mail", dnd5e.ArmorChainMail},
		{"studded_leather", dnd5e.ArmorStuddedLeather},
		{"none", dnd5e.ArmorNone},
		{"NO-ARMOR", dnd5e.ArmorNone},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			armor, err := dnd5e.ParseArmor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, armor)
		})
	}

	_, err := dnd5e.ParseArmor("mithral")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestShield_Bonus(t *testing.T) {
	assert.Equal(t, 2, dnd5e.WithShield.Bonus())
	assert.Equal(t, 0, dnd5e.NoShield.Bonus())
}

func TestParseUnarmoredDefense(t *testing.T) {
	ud, err := dnd5e.ParseUnarmoredDefense("Barbarian", 3)
	require.NoError(t, err)
	assert.Equal(t, dnd5e.BarbarianDefense(3), ud)
	assert.Equal(t, dnd5e.AbilityConstitution, ud.Ability())

	ud, err = dnd5e.ParseUnarmoredDefense("monk", 4)
	require.NoError(t, err)
	assert.True(t, ud.IsMonk())
	assert.Equal(t, dnd5e.AbilityWisdom, ud.Ability())

	ud, err = dnd5e.ParseUnarmoredDefense("neither", 4)
	require.NoError(t, err)
	assert.True(t, ud.IsNone())

	_, err = dnd5e.ParseUnarmoredDefense("druid", 1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestUnarmoredDefense_ZeroValueIsNone(t *testing.T) {
	var ud dnd5e.UnarmoredDefense
	assert.True(t, ud.IsNone())
	assert.True(t, ud.Valid())
}

func TestUnarmoredDefense_Valid(t *testing.T) {
	assert.True(t, dnd5e.NoUnarmoredDefense().Valid())
	assert.True(t, dnd5e.BarbarianDefense(3).Valid())
	assert.True(t, dnd5e.MonkDefense(-1).Valid())
	assert.False(t, dnd5e.UnarmoredDefense{Kind: "draconic"}.Valid())
}

func TestParseHPMethod(t *testing.T) {
	method, err := dnd5e.ParseHPMethod("Rolled")
	require.NoError(t, err)
	assert.Equal(t, dnd5e.HPMethodRolled, method)

	method, err = dnd5e.ParseHPMethod("average")
	require.NoError(t, err)
	assert.Equal(t, dnd5e.HPMethodAverage, method)

	_, err = dnd5e.ParseHPMethod("max")
	assert.True(t, errors.IsInvalidArgument(err))
}
