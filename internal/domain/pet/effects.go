package pet

// Effect declares what an interaction does and when it is legal. Cooldown
// intervals are configuration and live outside the table (see the cooldown
// gate); the table covers stat deltas and preconditions.
type Effect struct {
	Delta Delta

	// Statuses the interaction may be performed in (post-decay status).
	Statuses []Status

	// Extra stat preconditions, checked against post-decay stats.
	// Zero values mean "no constraint" (MaxEnergy/MaxHunger default to StatMax).
	MinEnergy int
	MaxEnergy int
	MaxHunger int

	// Counts against the rolling daily cap (Rules.TreatDailyLimit).
	DailyCap bool

	// Sleep flag transitions forced by the interaction.
	Sleeps bool
	Wakes  bool
}

var awake = []Status{StatusNormal, StatusSick, StatusUnhappy}

var effects = map[InteractionType]Effect{
	TypeFeed: {
		Delta:     Delta{Happiness: 5, Hunger: 30, Hygiene: -5},
		Statuses:  awake,
		MaxHunger: 90,
	},
	TypeClean: {
		Delta:    Delta{Happiness: 5, Energy: -5, Hygiene: 40},
		Statuses: awake,
	},
	TypePlay: {
		Delta:     Delta{Happiness: 15, Hunger: -10, Energy: -15, Hygiene: -10},
		Statuses:  awake,
		MinEnergy: 30,
	},
	TypeSleep: {
		// Sick pets must be cleaned and fed back to health before resting.
		Delta:     Delta{Hunger: -5, Energy: 20},
		Statuses:  []Status{StatusNormal, StatusUnhappy},
		MaxEnergy: 80,
		Sleeps:    true,
	},
	TypeWake: {
		Statuses:  []Status{StatusSleeping},
		MinEnergy: 50,
		Wakes:     true,
	},
	TypePet: {
		Delta:    Delta{Happiness: 10},
		Statuses: []Status{StatusNormal, StatusSleeping, StatusSick, StatusUnhappy},
	},
	TypeExercise: {
		Delta:     Delta{Happiness: 10, Hunger: -15, Energy: -20, Hygiene: -15},
		Statuses:  awake,
		MinEnergy: 40,
	},
	TypeTreat: {
		Delta:    Delta{Happiness: 20, Hunger: 10, Energy: 5, Hygiene: -5},
		Statuses: awake,
		DailyCap: true,
	},
	TypeMedicine: {
		Delta:    Delta{Happiness: -5, Energy: -10, Hygiene: 20},
		Statuses: []Status{StatusSick},
	},
}

func EffectFor(t InteractionType) (Effect, bool) {
	e, ok := effects[t]
	return e, ok
}

func (e Effect) LegalIn(st Status) bool {
	for _, s := range e.Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// MeetsStatRequirements checks the extra preconditions against post-decay stats.
func (e Effect) MeetsStatRequirements(s Stats) bool {
	if s.Energy < e.MinEnergy {
		return false
	}
	if e.MaxEnergy > 0 && s.Energy > e.MaxEnergy {
		return false
	}
	if e.MaxHunger > 0 && s.Hunger > e.MaxHunger {
		return false
	}
	return true
}
