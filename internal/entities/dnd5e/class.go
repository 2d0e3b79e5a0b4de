package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// ClassID identifies a character class
type ClassID string

// Class constants
const (
	ClassBarbarian ClassID = "barbarian"
	ClassBard      ClassID = "bard"
	ClassCleric    ClassID = "cleric"
	ClassDruid     ClassID = "druid"
	ClassFighter   ClassID = "fighter"
	ClassMonk      ClassID = "monk"
	ClassPaladin   ClassID = "paladin"
	ClassRanger    ClassID = "ranger"
	ClassRogue     ClassID = "rogue"
	ClassSorcerer  ClassID = "sorcerer"
	ClassWarlock   ClassID = "warlock"
	ClassWizard    ClassID = "wizard"
	ClassArtificer ClassID = "artificer"
	ClassHomebrew  ClassID = "homebrew"
)

var classOrder = []ClassID{
	ClassBarbarian,
	ClassBard,
	ClassCleric,
	ClassDruid,
	ClassFighter,
	ClassMonk,
	ClassPaladin,
	ClassRanger,
	ClassRogue,
	ClassSorcerer,
	ClassWarlock,
	ClassWizard,
	ClassArtificer,
	ClassHomebrew,
}

var classHitDice = map[ClassID]HitDice{
	ClassBarbarian: D12,
	ClassBard:      D8,
	ClassCleric:    D8,
	ClassDruid:     D8,
	ClassFighter:   D10,
	ClassMonk:      D8,
	ClassPaladin:   D10,
	ClassRanger:    D10,
	ClassRogue:     D8,
	ClassSorcerer:  D6,
	ClassWarlock:   D8,
	ClassWizard:    D6,
	ClassArtificer: D8,
}

var classNames = map[ClassID]string{
	ClassBarbarian: "Barbarian",
	ClassBard:      "Bard",
	ClassCleric:    "Cleric",
	ClassDruid:     "Druid",
	ClassFighter:   "Fighter",
	ClassMonk:      "Monk",
	ClassPaladin:   "Paladin",
	ClassRanger:    "Ranger",
	ClassRogue:     "Rogue",
	ClassSorcerer:  "Sorcerer",
	ClassWarlock:   "Warlock",
	ClassWizard:    "Wizard",
	ClassArtificer: "Artificer",
	ClassHomebrew:  "Homebrew",
}

// AllClasses returns every class ID in menu order, homebrew last
func AllClasses() []ClassID {
	out := make([]ClassID, len(classOrder))
	copy(out, classOrder)
	return out
}

// String returns the display name of the class ID
func (id ClassID) String() string {
	if name, ok := classNames[id]; ok {
		return name
	}
	return string(id)
}

// Class is a character class. Fixed archetypes carry only their ID;
// a homebrew class also carries a display name and an explicit hit die.
type Class struct {
	ID ClassID

	// Homebrew only
	Name string
	Dice HitDice
}

// NewClass returns one of the fixed archetypes
func NewClass(id ClassID) (Class, error) {
	if id == ClassHomebrew {
		return Class{}, errors.InvalidArgument("homebrew classes require a hit die, use HomebrewClass")
	}
	if _, ok := classHitDice[id]; !ok {
		return Class{}, errors.InvalidArgumentf("unknown class: %s", id).WithMeta("class", string(id))
	}
	return Class{ID: id}, nil
}

// HomebrewClass returns a user-defined class. The name may be empty,
// in which case the class is displayed as "Homebrew".
func HomebrewClass(name string, dice HitDice) (Class, error) {
	if !dice.Valid() {
		return Class{}, errors.WrapWithCodef(ErrInvalidDice, errors.CodeInvalidArgument,
			"homebrew hit die must have at least one face, got %d", int(dice))
	}
	return Class{
		ID:   ClassHomebrew,
		Name: strings.TrimSpace(name),
		Dice: dice,
	}, nil
}

// ParseClass parses a class ID case-insensitively. Homebrew is rejected
// because it cannot be built from an ID alone.
func ParseClass(text string) (Class, error) {
	id := ClassID(strings.ToLower(strings.TrimSpace(text)))
	return NewClass(id)
}

// IsHomebrew reports whether the class is user-defined
func (c Class) IsHomebrew() bool {
	return c.ID == ClassHomebrew
}

// HitDice returns the class hit die
func (c Class) HitDice() HitDice {
	if c.IsHomebrew() {
		return c.Dice
	}
	return classHitDice[c.ID]
}

// Valid reports whether the class is a known archetype or a homebrew
// class with a usable hit die
func (c Class) Valid() bool {
	if c.IsHomebrew() {
		return c.Dice.Valid()
	}
	_, ok := classHitDice[c.ID]
	return ok
}

// String returns the display name
func (c Class) String() string {
	if c.IsHomebrew() && c.Name != "" {
		return c.Name
	}
	return c.ID.String()
}
