package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Armor identifies the body armor a character wears
type Armor string

// Armor constants
const (
	ArmorNone           Armor = "no-armor"
	ArmorLeather        Armor = "leather"
	ArmorStuddedLeather Armor = "studded-leather"
	ArmorHide           Armor = "hide"
	ArmorChainShirt     Armor = "chain-shirt"
	ArmorScaleMail      Armor = "scale-mail"
	ArmorBreastplate    Armor = "breastplate"
	ArmorHalfPlate      Armor = "half-plate"
	ArmorRingMail       Armor = "ring-mail"
	ArmorChainMail      Armor = "chain-mail"
	ArmorSplint         Armor = "splint"
	ArmorPlate          Armor = "plate"
)

// DexPolicy is how much of the dexterity modifier an armor lets through
type DexPolicy int

// Dexterity policies
const (
	// DexUnlimited applies the full modifier (no armor and light armor)
	DexUnlimited DexPolicy = iota
	// DexCapped clamps the modifier to [0, MediumArmorDexCap] (medium armor)
	DexCapped
	// DexNone ignores the modifier entirely (heavy armor)
	DexNone
)

// MediumArmorDexCap is the largest dexterity bonus medium armor allows
const MediumArmorDexCap = 2

type armorStats struct {
	name   string
	baseAC int
	dex    DexPolicy
}

var armorOrder = []Armor{
	ArmorNone,
	ArmorLeather,
	ArmorStuddedLeather,
	ArmorHide,
	ArmorChainShirt,
	ArmorScaleMail,
	ArmorBreastplate,
	ArmorHalfPlate,
	ArmorRingMail,
	ArmorChainMail,
	ArmorSplint,
	ArmorPlate,
}

var armorTable = map[Armor]armorStats{
	ArmorNone:           {name: "No Armor", baseAC: 10, dex: DexUnlimited},
	ArmorLeather:        {name: "Leather", baseAC: 11, dex: DexUnlimited},
	ArmorStuddedLeather: {name: "Studded Leather", baseAC: 12, dex: DexUnlimited},
	ArmorHide:           {name: "Hide", baseAC: 12, dex: DexCapped},
	ArmorChainShirt:     {name: "Chain Shirt", baseAC: 13, dex: DexCapped},
	ArmorScaleMail:      {name: "Scale Mail", baseAC: 14, dex: DexCapped},
	ArmorBreastplate:    {name: "Breastplate", baseAC: 14, dex: DexCapped},
	ArmorHalfPlate:      {name: "Half Plate", baseAC: 15, dex: DexCapped},
	ArmorRingMail:       {name: "Ring Mail", baseAC: 14, dex: DexNone},
	ArmorChainMail:      {name: "Chain Mail", baseAC: 16, dex: DexNone},
	ArmorSplint:         {name: "Splint", baseAC: 17, dex: DexNone},
	ArmorPlate:          {name: "Plate", baseAC: 18, dex: DexNone},
}

// AllArmor returns every armor in menu order: none, light, medium, heavy
func AllArmor() []Armor {
	out := make([]Armor, len(armorOrder))
	copy(out, armorOrder)
	return out
}

// ParseArmor parses an armor ID case-insensitively. Spaces and underscores
// are accepted in place of dashes, so "Chain Mail" parses too.
func ParseArmor(text string) (Armor, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	switch key {
	case "none", "":
		return ArmorNone, nil
	}

	armor := Armor(key)
	if !armor.Valid() {
		return "", errors.InvalidArgumentf("unknown armor: %s", text).WithMeta("armor", text)
	}
	return armor, nil
}

// Valid reports whether a is a known armor
func (a Armor) Valid() bool {
	_, ok := armorTable[a]
	return ok
}

// BaseAC returns the armor class the armor grants before modifiers
func (a Armor) BaseAC() int {
	return armorTable[a].baseAC
}

// DexPolicy returns how the armor treats the dexterity modifier
func (a Armor) DexPolicy() DexPolicy {
	return armorTable[a].dex
}

// String returns the display name
func (a Armor) String() string {
	if s, ok := armorTable[a]; ok {
		return s.name
	}
	return string(a)
}

// String returns the armor group the policy belongs to
func (p DexPolicy) String() string {
	switch p {
	case DexUnlimited:
		return "light"
	case DexCapped:
		return "medium"
	case DexNone:
		return "heavy"
	default:
		return "unknown"
	}
}

// Shield is whether a shield is carried
type Shield bool

// Shield values
const (
	NoShield   Shield = false
	WithShield Shield = true
)

// ShieldBonus is the armor class a shield adds
const ShieldBonus = 2

// Bonus returns the armor class the shield contributes
func (s Shield) Bonus() int {
	if s {
		return ShieldBonus
	}
	return 0
}

// String returns "Shield" or "No Shield"
func (s Shield) String() string {
	if s {
		return "Shield"
	}
	return "No Shield"
}

// UnarmoredDefenseKind is the class feature granting unarmored defense
type UnarmoredDefenseKind string

// Unarmored defense kinds
const (
	UnarmoredDefenseNone      UnarmoredDefenseKind = "none"
	UnarmoredDefenseBarbarian UnarmoredDefenseKind = "barbarian"
	UnarmoredDefenseMonk      UnarmoredDefenseKind = "monk"
)

// UnarmoredDefense adds an ability modifier to AC while no armor is worn:
// constitution for barbarians, wisdom for monks. The zero value is no
// unarmored defense.
type UnarmoredDefense struct {
	Kind     UnarmoredDefenseKind
	Modifier int
}

// NoUnarmoredDefense returns the absence of the feature
func NoUnarmoredDefense() UnarmoredDefense {
	return UnarmoredDefense{Kind: UnarmoredDefenseNone}
}

// BarbarianDefense returns barbarian unarmored defense with the given constitution modifier
func BarbarianDefense(conMod int) UnarmoredDefense {
	return UnarmoredDefense{Kind: UnarmoredDefenseBarbarian, Modifier: conMod}
}

// MonkDefense returns monk unarmored defense with the given wisdom modifier
func MonkDefense(wisMod int) UnarmoredDefense {
	return UnarmoredDefense{Kind: UnarmoredDefenseMonk, Modifier: wisMod}
}

// ParseUnarmoredDefense builds an unarmored defense from a kind name and modifier
func ParseUnarmoredDefense(kind string, modifier int) (UnarmoredDefense, error) {
	switch UnarmoredDefenseKind(strings.ToLower(strings.TrimSpace(kind))) {
	case UnarmoredDefenseNone, "", "neither":
		return NoUnarmoredDefense(), nil
	case UnarmoredDefenseBarbarian:
		return BarbarianDefense(modifier), nil
	case UnarmoredDefenseMonk:
		return MonkDefense(modifier), nil
	default:
		return UnarmoredDefense{}, errors.InvalidArgumentf("unknown unarmored defense: %s", kind).
			WithMeta("unarmored_defense", kind)
	}
}

// IsBarbarian reports whether this is the barbarian feature
func (u UnarmoredDefense) IsBarbarian() bool {
	return u.Kind == UnarmoredDefenseBarbarian
}

// IsMonk reports whether this is the monk feature
func (u UnarmoredDefense) IsMonk() bool {
	return u.Kind == UnarmoredDefenseMonk
}

// IsNone reports whether no unarmored defense applies
func (u UnarmoredDefense) IsNone() bool {
	return !u.IsBarbarian() && !u.IsMonk()
}

// Valid reports whether the kind is known; the zero value is valid
func (u UnarmoredDefense) Valid() bool {
	switch u.Kind {
	case "", UnarmoredDefenseNone, UnarmoredDefenseBarbarian, UnarmoredDefenseMonk:
		return true
	default:
		return false
	}
}

// Ability returns the ability whose modifier the feature adds
func (u UnarmoredDefense) Ability() string {
	switch u.Kind {
	case UnarmoredDefenseBarbarian:
		return AbilityConstitution
	case UnarmoredDefenseMonk:
		return AbilityWisdom
	default:
		return ""
	}
}
