package rpgtoolkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-stats/internal/engine/rpgtoolkit"
)

func TestCharacterEntity(t *testing.T) {
	entity := rpgtoolkit.NewCharacterEntity("char-123")

	assert.Equal(t, "char-123", entity.GetID())
	assert.Equal(t, "character", entity.GetType())
	assert.False(t, entity.IsAnonymous())
}

func TestCharacterEntity_Anonymous(t *testing.T) {
	entity := rpgtoolkit.NewCharacterEntity("")

	assert.Equal(t, "anonymous", entity.GetID())
	assert.True(t, entity.IsAnonymous())
}
