package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// SequenceRoller implements dice.Roller with predetermined results, in order.
// It fails once the sequence is exhausted. Results are returned as given, even
// when they do not fit the die, so callers can exercise out-of-range handling.
type SequenceRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	sizes     []int
}

// NewSequenceRoller creates a roller that returns rolls in order
func NewSequenceRoller(rolls ...int) *SequenceRoller {
	return &SequenceRoller{rolls: rolls}
}

var _ dice.Roller = (*SequenceRoller)(nil)

// Roll returns the next predetermined result
func (r *SequenceRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if r.rollIndex >= len(r.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", r.rollIndex, len(r.rolls))
	}

	roll := r.rolls[r.rollIndex]
	r.rollIndex++
	return roll, nil
}

// RollN returns the next count predetermined results
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}

// Used returns how many results have been consumed
func (r *SequenceRoller) Used() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rollIndex
}

// Sizes returns the die size requested by every call, in order
func (r *SequenceRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.sizes))
	copy(out, r.sizes)
	return out
}
