package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	// EntityTypeCharacter is the rpg-toolkit entity type for a player character
	EntityTypeCharacter = "character"

	anonymousCharacterID = "anonymous"
)

// CharacterEntity identifies the character a calculation was made for
type CharacterEntity struct {
	ID string
}

// NewCharacterEntity wraps an entity ID.
// An empty ID becomes "anonymous" so events always carry a source.
func NewCharacterEntity(id string) *CharacterEntity {
	if id == "" {
		id = anonymousCharacterID
	}
	return &CharacterEntity{ID: id}
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// IsAnonymous reports whether no entity ID was supplied
func (c *CharacterEntity) IsAnonymous() bool {
	return c.ID == anonymousCharacterID
}

var _ core.Entity = (*CharacterEntity)(nil)
