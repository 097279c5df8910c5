package pet

// Derive computes the status from stats and the explicit sleep flag.
// Precedence, first match wins:
//
//  1. sleeping                      -> StatusSleeping
//  2. hunger or hygiene at zero     -> StatusSick
//  3. happiness below the threshold -> StatusUnhappy
//  4. otherwise                     -> StatusNormal
//
// Sleeping is not derived from stats; it is set by an explicit sleep
// interaction and cleared by a wake interaction or a full energy bar
// (handled by the entity before calling Derive).
func Derive(s Stats, sleeping bool, r Rules) Status {
	switch {
	case sleeping:
		return StatusSleeping
	case s.Hunger == StatMin || s.Hygiene == StatMin:
		return StatusSick
	case s.Happiness < r.UnhappyThreshold:
		return StatusUnhappy
	default:
		return StatusNormal
	}
}
