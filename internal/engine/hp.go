package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// CalculateHitPoints returns the maximum hit points for the request.
//
// First level always grants the full hit die plus the constitution modifier.
// Later levels grant either the fixed average or one roll of the hit die each,
// plus the constitution modifier. Tough adds 2 per level and Hill Dwarf 1 per level.
//
// The roller is only used by HPMethodRolled and may be nil otherwise.
func CalculateHitPoints(req HPRequest, roller dice.Roller) (HPResult, error) {
	if err := validateHPRequest(req); err != nil {
		return nil, err
	}

	switch req.Method {
	case dnd5e.HPMethodAverage:
		return AverageHitPoints(req), nil
	case dnd5e.HPMethodRolled:
		return RollHitPoints(req, roller)
	default:
		return nil, errors.InvalidArgumentf("unknown hit point method: %s", req.Method)
	}
}

// AverageHitPoints computes hit points with the fixed value for every level after the first
func AverageHitPoints(req HPRequest) *AverageHP {
	hd := hitDiceValue(req.Class)
	con := float64(req.ConModifier)
	perLevel := 1 + math.Ceil(hd/2)

	total := hd + con + (perLevel+con)*float64(req.Level-1) + featureBonus(req)

	return &AverageHP{Points: total}
}

// RollHitPoints computes hit points by rolling the hit die once per level after the first
func RollHitPoints(req HPRequest, roller dice.Roller) (*RolledHP, error) {
	if err := validateHPRequest(req); err != nil {
		return nil, err
	}
	if roller == nil && req.Level > 1 {
		return nil, errors.InvalidArgument("dice roller is required to roll hit points")
	}

	hd := hitDiceValue(req.Class)
	faces := int(hd)
	con := float64(req.ConModifier)

	total := hd + con + featureBonus(req)
	rolls := make([]int, 0, req.Level-1)
	for level := 2; level <= req.Level; level++ {
		roll, err := roller.Roll(faces)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll hit die for level %d", level)
		}
		if roll < 1 || roll > faces {
			return nil, errors.Internalf("roller returned %d for a d%d", roll, faces).
				WithMeta("level", level)
		}

		rolls = append(rolls, roll)
		total += float64(roll) + con
	}

	return &RolledHP{
		Points: total,
		Rolls:  rolls,
	}, nil
}

func hitDiceValue(class dnd5e.Class) float64 {
	return float64(class.HitDice().Faces())
}

func featureBonus(req HPRequest) float64 {
	bonus := 0
	if req.Tough {
		bonus += dnd5e.ToughHPPerLevel * req.Level
	}
	if req.HillDwarf {
		bonus += dnd5e.HillDwarfHPPerLevel * req.Level
	}
	return float64(bonus)
}

func validateHPRequest(req HPRequest) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Level", req.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	if !req.Class.Valid() {
		vb.InvalidField("Class", "unknown class or hit die without faces")
	}

	return vb.Build()
}
