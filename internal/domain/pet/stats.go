package pet

import "time"

const (
	StatMin = 0
	StatMax = 100
)

// Clamp saturates v into the valid stat range.
func Clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// Stats is the bounded attribute set of a pet. Values are always in
// [StatMin, StatMax]; every mutation goes through Clamp.
type Stats struct {
	Hunger    int
	Happiness int
	Energy    int
	Hygiene   int
}

func FullStats() Stats {
	return Stats{Hunger: StatMax, Happiness: StatMax, Energy: StatMax, Hygiene: StatMax}
}

func (s Stats) InBounds() bool {
	for _, v := range []int{s.Hunger, s.Happiness, s.Energy, s.Hygiene} {
		if v < StatMin || v > StatMax {
			return false
		}
	}
	return true
}

// Delta is a signed stat adjustment. Application is saturating, not wrapping.
type Delta struct {
	Hunger    int
	Happiness int
	Energy    int
	Hygiene   int
}

func (s Stats) ApplyDelta(d Delta) Stats {
	return Stats{
		Hunger:    Clamp(s.Hunger + d.Hunger),
		Happiness: Clamp(s.Happiness + d.Happiness),
		Energy:    Clamp(s.Energy + d.Energy),
		Hygiene:   Clamp(s.Hygiene + d.Hygiene),
	}
}

// Diff returns the delta that turns prev into s.
func (s Stats) Diff(prev Stats) Delta {
	return Delta{
		Hunger:    s.Hunger - prev.Hunger,
		Happiness: s.Happiness - prev.Happiness,
		Energy:    s.Energy - prev.Energy,
		Hygiene:   s.Hygiene - prev.Hygiene,
	}
}

// Rules holds the simulation tuning. Rates are stat units per hour.
type Rules struct {
	HungerDecayPerHour    int
	EnergyDecayPerHour    int
	EnergyRegenPerHour    int
	HygieneDecayPerHour   int
	HappinessDriftPerHour int
	HappinessMidpoint     int
	UnhappyThreshold      int
	LowStatThreshold      int
	LowStatPenaltyPerHour int
	TreatDailyLimit       int
}

// perElapsed converts a per-hour rate into whole stat units for the elapsed
// window. Truncating division keeps the function deterministic for a given
// (rate, elapsed) pair.
func perElapsed(ratePerHour int, elapsed time.Duration) int {
	return int(int64(ratePerHour) * int64(elapsed/time.Second) / 3600)
}

// Decay returns the stats after elapsed wall-clock time. Hunger, energy and
// hygiene drain toward zero (energy regenerates instead while the pet is
// sleeping); happiness drifts toward the configured midpoint, faster when a
// basic need is running low. Pure function: no clock access, no side effects.
func (s Stats) Decay(elapsed time.Duration, sleeping bool, r Rules) Stats {
	if elapsed <= 0 {
		return s
	}

	next := s
	next.Hunger = Clamp(next.Hunger - perElapsed(r.HungerDecayPerHour, elapsed))
	next.Hygiene = Clamp(next.Hygiene - perElapsed(r.HygieneDecayPerHour, elapsed))

	if sleeping {
		next.Energy = Clamp(next.Energy + perElapsed(r.EnergyRegenPerHour, elapsed))
	} else {
		next.Energy = Clamp(next.Energy - perElapsed(r.EnergyDecayPerHour, elapsed))
	}

	drift := perElapsed(r.HappinessDriftPerHour, elapsed)
	switch {
	case next.Happiness > r.HappinessMidpoint:
		next.Happiness = max(r.HappinessMidpoint, next.Happiness-drift)
	case next.Happiness < r.HappinessMidpoint:
		next.Happiness = min(r.HappinessMidpoint, next.Happiness+drift)
	}

	// Neglected needs weigh on the mood beyond the plain drift.
	if next.Hunger < r.LowStatThreshold || next.Energy < r.LowStatThreshold || next.Hygiene < r.LowStatThreshold {
		next.Happiness = Clamp(next.Happiness - perElapsed(r.LowStatPenaltyPerHour, elapsed))
	}

	return next
}
