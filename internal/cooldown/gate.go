// Package cooldown rate-limits interactions per (pet, interaction type).
//
// The gate owns the minimum intervals; the last-applied timestamps ride on
// the pet snapshot itself, so stamping a cooldown is part of the same atomic
// commit as the stat update and a failed interaction can never consume one.
package cooldown

import (
	"time"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/pkg/config"
)

type Gate struct {
	intervals map[pet.InteractionType]time.Duration
}

func NewGate(cfg config.GameConfig) *Gate {
	return &Gate{
		intervals: map[pet.InteractionType]time.Duration{
			pet.TypeFeed:     cfg.FeedCooldown,
			pet.TypeClean:    cfg.CleanCooldown,
			pet.TypePlay:     cfg.PlayCooldown,
			pet.TypeSleep:    cfg.SleepCooldown,
			pet.TypeWake:     cfg.WakeCooldown,
			pet.TypePet:      cfg.PetCooldown,
			pet.TypeExercise: cfg.ExerciseCooldown,
			pet.TypeTreat:    cfg.TreatCooldown,
			pet.TypeMedicine: cfg.MedicineCooldown,
		},
	}
}

// Interval returns the minimum elapsed time required between successive
// applications of t.
func (g *Gate) Interval(t pet.InteractionType) time.Duration {
	return g.intervals[t]
}

// CheckAndReserve reports whether t may be applied to p at now. When denied,
// remaining is the wait time until the next legal application. The
// reservation is tentative: callers stamp the snapshot (pet.Pet.Apply) and
// commit it, so nothing is recorded unless the interaction succeeds.
//
// Must be called only inside the pet's exclusive critical section; the
// answer is stale otherwise.
func (g *Gate) CheckAndReserve(p pet.Pet, t pet.InteractionType, now time.Time) (remaining time.Duration, allowed bool) {
	last, ok := p.LastApplied(t)
	if !ok {
		return 0, true
	}
	wait := g.intervals[t] - now.Sub(last)
	if wait > 0 {
		return wait, false
	}
	return 0, true
}
