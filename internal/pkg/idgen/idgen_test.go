package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		id := idgen.NewUUID("roll").Generate()
		require.True(t, strings.HasPrefix(id, "roll_"))

		_, err := uuid.Parse(strings.TrimPrefix(id, "roll_"))
		assert.NoError(t, err)
	})

	t.Run("without prefix", func(t *testing.T) {
		_, err := uuid.Parse(idgen.NewUUID("").Generate())
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		gen := idgen.NewUUID("roll")
		assert.NotEqual(t, gen.Generate(), gen.Generate())
	})
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("roll")
	assert.Equal(t, "roll_1", gen.Generate())
	assert.Equal(t, "roll_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
