//go:build unit

package pet_test

import (
	"testing"

	"petkeeper/internal/domain/pet"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	r := testRules()

	tests := []struct {
		name     string
		stats    pet.Stats
		sleeping bool
		expected pet.Status
	}{
		{
			name:     "healthy pet is normal",
			stats:    pet.Stats{Hunger: 80, Happiness: 80, Energy: 80, Hygiene: 80},
			expected: pet.StatusNormal,
		},
		{
			name:     "sleeping wins over everything",
			stats:    pet.Stats{Hunger: 0, Happiness: 0, Energy: 10, Hygiene: 0},
			sleeping: true,
			expected: pet.StatusSleeping,
		},
		{
			name:     "zero hunger means sick",
			stats:    pet.Stats{Hunger: 0, Happiness: 80, Energy: 80, Hygiene: 80},
			expected: pet.StatusSick,
		},
		{
			name:     "zero hygiene means sick",
			stats:    pet.Stats{Hunger: 80, Happiness: 80, Energy: 80, Hygiene: 0},
			expected: pet.StatusSick,
		},
		{
			name:     "sick wins over unhappy",
			stats:    pet.Stats{Hunger: 0, Happiness: 10, Energy: 80, Hygiene: 80},
			expected: pet.StatusSick,
		},
		{
			name:     "happiness below threshold means unhappy",
			stats:    pet.Stats{Hunger: 80, Happiness: 29, Energy: 80, Hygiene: 80},
			expected: pet.StatusUnhappy,
		},
		{
			name:     "happiness at threshold is normal",
			stats:    pet.Stats{Hunger: 80, Happiness: 30, Energy: 80, Hygiene: 80},
			expected: pet.StatusNormal,
		},
		{
			name:     "zero energy alone does not make a pet sick",
			stats:    pet.Stats{Hunger: 80, Happiness: 80, Energy: 0, Hygiene: 80},
			expected: pet.StatusNormal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pet.Derive(tt.stats, tt.sleeping, r))
		})
	}
}

func TestNewStatus(t *testing.T) {
	st, err := pet.NewStatus("sick")
	assert.NoError(t, err)
	assert.Equal(t, pet.StatusSick, st)

	_, err = pet.NewStatus("zombie")
	assert.ErrorIs(t, err, pet.ErrInvalidStatus)
}
