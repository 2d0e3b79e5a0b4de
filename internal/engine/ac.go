package engine

import (
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
)

// CalculateArmorClass returns the armor class for the request
func CalculateArmorClass(req ACRequest) int {
	return BreakdownArmorClass(req).Total
}

// BreakdownArmorClass computes the armor class and reports where each point came from.
//
// Unarmored defense only applies without armor. The barbarian bonus survives
// a shield; the monk bonus does not.
func BreakdownArmorClass(req ACRequest) ACBreakdown {
	unarmored := unarmoredBonus(req)
	dex := applyDexPolicy(req.Armor.DexPolicy(), req.DexModifier+unarmored)

	out := ACBreakdown{
		Base:           req.Armor.BaseAC(),
		Dex:            dex,
		UnarmoredBonus: unarmored,
		Shield:         req.Shield.Bonus(),
	}
	out.Total = out.Base + out.Dex + out.Shield
	return out
}

func unarmoredBonus(req ACRequest) int {
	if req.Armor != dnd5e.ArmorNone {
		return 0
	}

	switch req.UnarmoredDefense.Kind {
	case dnd5e.UnarmoredDefenseBarbarian:
		return req.UnarmoredDefense.Modifier
	case dnd5e.UnarmoredDefenseMonk:
		if req.Shield == dnd5e.NoShield {
			return req.UnarmoredDefense.Modifier
		}
		return 0
	case dnd5e.UnarmoredDefenseNone:
		return 0
	default:
		return 0
	}
}

func applyDexPolicy(policy dnd5e.DexPolicy, dex int) int {
	switch policy {
	case dnd5e.DexUnlimited:
		return dex
	case dnd5e.DexCapped:
		return min(max(dex, 0), dnd5e.MediumArmorDexCap)
	case dnd5e.DexNone:
		return 0
	default:
		return 0
	}
}
