package stats

import (
	"fmt"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
)

const (
	tipMonkShield = "Tip: Monks lose their Unarmored Defense when using a shield"

	// Bonus above this is worth more than the shield's +2
	monkShieldBreakEven = dnd5e.ShieldBonus
)

// armorClassTips returns advice about the chosen equipment, in display order
func armorClassTips(input *CalculateArmorClassInput) []string {
	var tips []string

	if input.Shield.Bonus() > 0 && input.UnarmoredDefense.IsMonk() {
		tips = append(tips, tipMonkShield)

		if lost := input.UnarmoredDefense.Modifier - monkShieldBreakEven; lost > 0 {
			tips = append(tips, fmt.Sprintf("You are losing out on %d AC by using a shield", lost))
		}
	}

	return tips
}
