// Package dicesession stores short-lived logs of dice rolls grouped by entity and context
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session Repository

// DiceSession is the set of rolls made for one entity in one context
type DiceSession struct {
	// Entity that owns these rolls (e.g., "char_1", "tordek")
	EntityID string `json:"entity_id"`

	// Context groups related rolls (e.g., "hit_points")
	Context string `json:"context"`

	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TotalRolled sums the totals of every roll in the session
func (s *DiceSession) TotalRolled() int {
	total := 0
	for _, roll := range s.Rolls {
		total += roll.Total
	}
	return total
}

// DiceRoll is a single recorded roll
type DiceRoll struct {
	RollID string `json:"roll_id"`

	// Dice notation that was rolled (e.g., "4d10")
	Notation string `json:"notation"`

	// Individual die results in roll order
	Dice []int `json:"dice"`

	// Modifier applied on top of the dice
	Modifier int `json:"modifier"`

	// DiceTotal + Modifier
	Total int `json:"total"`

	DiceTotal int `json:"dice_total"`

	Description string    `json:"description,omitempty"`
	RolledAt    time.Time `json:"rolled_at"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration // zero uses the repository default
}

// CreateOutput contains the created session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput identifies a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput identifies the session to delete
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput reports how many rolls were discarded
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the storage operations for dice sessions
type Repository interface {
	// Create stores a new dice session, replacing any existing one
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session; missing or expired sessions are NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
