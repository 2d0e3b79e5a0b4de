package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Ability constants
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// HPMethod is how hit points past first level are determined
type HPMethod string

// Hit point methods
const (
	// HPMethodAverage takes the fixed per-level value (half the die, rounded up, plus one)
	HPMethodAverage HPMethod = "average"
	// HPMethodRolled rolls the hit die for every level after the first
	HPMethodRolled HPMethod = "rolled"
)

// Level bounds. Levels past 20 are allowed for homebrew play up to MaxLevel.
const (
	MinLevel = 1
	MaxLevel = 100
)

// Feature bonuses to hit points, per character level
const (
	ToughHPPerLevel     = 2
	HillDwarfHPPerLevel = 1
)

// ParseHPMethod parses "average" or "rolled" case-insensitively ("roll" is accepted too)
func ParseHPMethod(text string) (HPMethod, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "average", "avg", "fixed":
		return HPMethodAverage, nil
	case "rolled", "roll":
		return HPMethodRolled, nil
	default:
		return "", errors.InvalidArgumentf("unknown hit point method: %s (expected average or rolled)", text).
			WithMeta("method", text)
	}
}

// String returns the display name
func (m HPMethod) String() string {
	switch m {
	case HPMethodAverage:
		return "Average"
	case HPMethodRolled:
		return "Rolled"
	default:
		return string(m)
	}
}
