//go:build unit

package pet_test

import (
	"testing"

	"petkeeper/internal/domain/pet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectFor(t *testing.T) {
	for _, typ := range pet.Types() {
		_, ok := pet.EffectFor(typ)
		assert.True(t, ok, "missing effect for %s", typ)
	}

	_, ok := pet.EffectFor(pet.InteractionType("juggle"))
	assert.False(t, ok)
}

func TestNewInteractionType(t *testing.T) {
	typ, err := pet.NewInteractionType("feed")
	assert.NoError(t, err)
	assert.Equal(t, pet.TypeFeed, typ)

	_, err = pet.NewInteractionType("juggle")
	assert.ErrorIs(t, err, pet.ErrInvalidInteraction)
}

func TestLegalIn(t *testing.T) {
	tests := []struct {
		name   string
		typ    pet.InteractionType
		status pet.Status
		legal  bool
	}{
		{"feed while normal", pet.TypeFeed, pet.StatusNormal, true},
		{"feed while sick", pet.TypeFeed, pet.StatusSick, true},
		{"feed while sleeping", pet.TypeFeed, pet.StatusSleeping, false},
		{"sleep while normal", pet.TypeSleep, pet.StatusNormal, true},
		{"sleep while unhappy", pet.TypeSleep, pet.StatusUnhappy, true},
		{"sleep while sick", pet.TypeSleep, pet.StatusSick, false},
		{"sleep while already sleeping", pet.TypeSleep, pet.StatusSleeping, false},
		{"wake while sleeping", pet.TypeWake, pet.StatusSleeping, true},
		{"wake while normal", pet.TypeWake, pet.StatusNormal, false},
		{"pet while sleeping", pet.TypePet, pet.StatusSleeping, true},
		{"medicine while sick", pet.TypeMedicine, pet.StatusSick, true},
		{"medicine while normal", pet.TypeMedicine, pet.StatusNormal, false},
		{"play while sleeping", pet.TypePlay, pet.StatusSleeping, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff, ok := pet.EffectFor(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.legal, eff.LegalIn(tt.status))
		})
	}
}

func TestMeetsStatRequirements(t *testing.T) {
	tests := []struct {
		name  string
		typ   pet.InteractionType
		stats pet.Stats
		meets bool
	}{
		{"play needs energy 30", pet.TypePlay, pet.Stats{Energy: 29}, false},
		{"play at exactly 30", pet.TypePlay, pet.Stats{Energy: 30}, true},
		{"exercise needs energy 40", pet.TypeExercise, pet.Stats{Energy: 39}, false},
		{"exercise at exactly 40", pet.TypeExercise, pet.Stats{Energy: 40}, true},
		{"sleep refused above energy 80", pet.TypeSleep, pet.Stats{Energy: 81}, false},
		{"sleep at exactly 80", pet.TypeSleep, pet.Stats{Energy: 80}, true},
		{"wake needs energy 50", pet.TypeWake, pet.Stats{Energy: 49}, false},
		{"feed refused above hunger 90", pet.TypeFeed, pet.Stats{Hunger: 91, Energy: 50}, false},
		{"feed at exactly 90", pet.TypeFeed, pet.Stats{Hunger: 90, Energy: 50}, true},
		{"clean has no requirement", pet.TypeClean, pet.Stats{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff, ok := pet.EffectFor(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.meets, eff.MeetsStatRequirements(tt.stats))
		})
	}
}
