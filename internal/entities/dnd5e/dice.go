package dnd5e

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// ErrInvalidDice is the cause of every error returned by ParseHitDice
var ErrInvalidDice = stderrors.New("invalid dice")

// HitDice is the face count of the die a class rolls for hit points.
// The named dice are the standard polyhedrals; any other positive face
// count is a custom die (see OtherDice).
type HitDice int

// Standard hit dice
const (
	D4  HitDice = 4
	D6  HitDice = 6
	D8  HitDice = 8
	D10 HitDice = 10
	D12 HitDice = 12
	D20 HitDice = 20
)

// DefaultHitDice is preselected in menus
const DefaultHitDice = D8

var standardHitDice = []HitDice{D4, D6, D8, D10, D12, D20}

// StandardHitDice returns the named dice in ascending order
func StandardHitDice() []HitDice {
	out := make([]HitDice, len(standardHitDice))
	copy(out, standardHitDice)
	return out
}

// OtherDice returns a custom die with the given face count.
// A face count matching a standard die yields that die.
func OtherDice(faces int) (HitDice, error) {
	if faces <= 0 {
		return 0, errors.WrapWithCodef(ErrInvalidDice, errors.CodeInvalidArgument,
			"face count must be positive, got %d", faces).
			WithMeta("faces", faces)
	}
	return HitDice(faces), nil
}

// Faces returns the numeric face count
func (d HitDice) Faces() int {
	return int(d)
}

// IsStandard reports whether d is one of D4, D6, D8, D10, D12 or D20
func (d HitDice) IsStandard() bool {
	for _, s := range standardHitDice {
		if d == s {
			return true
		}
	}
	return false
}

// Valid reports whether the die has at least one face
func (d HitDice) Valid() bool {
	return d > 0
}

// String renders the die in dice notation, e.g. "d8"
func (d HitDice) String() string {
	return fmt.Sprintf("d%d", int(d))
}

// ParseHitDice parses "8" or "d8" (the d prefix is case-insensitive).
// Anything that is not a positive decimal integer fails with ErrInvalidDice.
func ParseHitDice(text string) (HitDice, error) {
	s := strings.TrimSpace(text)
	if len(s) > 0 && (s[0] == 'd' || s[0] == 'D') {
		s = s[1:]
	}

	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, invalidDice(text, "expected a number optionally prefixed with d")
	}

	faces, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidDice(text, "number out of range")
	}
	if faces <= 0 {
		return 0, invalidDice(text, "face count must be positive")
	}

	return HitDice(faces), nil
}

func invalidDice(text, reason string) *errors.Error {
	return errors.WrapWithCodef(ErrInvalidDice, errors.CodeInvalidArgument, "cannot parse hit dice %q: %s", text, reason).
		WithMeta("input", text)
}
