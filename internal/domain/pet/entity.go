package pet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid pet status")
	ErrInvalidInteraction = errors.New("invalid interaction type")
	ErrEmptyName          = errors.New("pet name cannot be empty")
	ErrNameTooLong        = errors.New("pet name too long")
	ErrEmptySpecies       = errors.New("pet species cannot be empty")
)

const maxNameLen = 50

// treatWindow is the rolling period for the daily treat cap.
const treatWindow = 24 * time.Hour

// Pet is an immutable snapshot of a pet's fields at a point in logical time.
// Mutating methods return a new copy; the stored version only advances when
// the cache commits a snapshot.
type Pet struct {
	id      uuid.UUID
	ownerID uuid.UUID
	name    string
	species string

	stats    Stats
	sleeping bool
	status   Status

	// Last successful application per interaction type. Travels with the
	// snapshot so a commit stamps stats, status and cooldowns as one unit.
	cooldowns map[InteractionType]time.Time

	treatCount   int
	treatResetAt time.Time

	updatedAt time.Time
	version   int64
	createdAt time.Time
}

func New(ownerID uuid.UUID, name, species string, now time.Time) (Pet, error) {
	if name == "" {
		return Pet{}, ErrEmptyName
	}
	if len(name) > maxNameLen {
		return Pet{}, ErrNameTooLong
	}
	if species == "" {
		return Pet{}, ErrEmptySpecies
	}
	return Pet{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         name,
		species:      species,
		stats:        FullStats(),
		status:       StatusNormal,
		cooldowns:    map[InteractionType]time.Time{},
		treatResetAt: now,
		updatedAt:    now,
		version:      1,
		createdAt:    now,
	}, nil
}

// Reconstruct rebuilds a snapshot from persisted fields.
func Reconstruct(
	id, ownerID uuid.UUID,
	name, species string,
	stats Stats,
	status Status,
	cooldowns map[InteractionType]time.Time,
	treatCount int,
	treatResetAt time.Time,
	updatedAt time.Time,
	version int64,
	createdAt time.Time,
) Pet {
	if cooldowns == nil {
		cooldowns = map[InteractionType]time.Time{}
	}
	return Pet{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		species:      species,
		stats:        stats,
		sleeping:     status == StatusSleeping,
		status:       status,
		cooldowns:    cooldowns,
		treatCount:   treatCount,
		treatResetAt: treatResetAt,
		updatedAt:    updatedAt,
		version:      version,
		createdAt:    createdAt,
	}
}

func (p Pet) ID() uuid.UUID           { return p.id }
func (p Pet) OwnerID() uuid.UUID      { return p.ownerID }
func (p Pet) Name() string            { return p.name }
func (p Pet) Species() string         { return p.species }
func (p Pet) Stats() Stats            { return p.stats }
func (p Pet) Status() Status          { return p.status }
func (p Pet) Sleeping() bool          { return p.sleeping }
func (p Pet) TreatCount() int         { return p.treatCount }
func (p Pet) TreatResetAt() time.Time { return p.treatResetAt }
func (p Pet) UpdatedAt() time.Time    { return p.updatedAt }
func (p Pet) Version() int64          { return p.version }
func (p Pet) CreatedAt() time.Time    { return p.createdAt }

// LastApplied returns the timestamp of the last committed application of t.
func (p Pet) LastApplied(t InteractionType) (time.Time, bool) {
	ts, ok := p.cooldowns[t]
	return ts, ok
}

// Cooldowns returns a copy of the per-type last-applied map.
func (p Pet) Cooldowns() map[InteractionType]time.Time {
	out := make(map[InteractionType]time.Time, len(p.cooldowns))
	for k, v := range p.cooldowns {
		out[k] = v
	}
	return out
}

// Decayed returns the effective snapshot at now: stats after lazy decay,
// sleep ended on a full energy bar, treat window rolled over, status
// re-derived. The version is untouched; this is a read, not a commit.
func (p Pet) Decayed(now time.Time, r Rules) Pet {
	next := p
	next.stats = p.stats.Decay(now.Sub(p.updatedAt), p.sleeping, r)

	if next.sleeping && next.stats.Energy >= StatMax {
		next.sleeping = false
	}
	if now.Sub(next.treatResetAt) >= treatWindow {
		next.treatCount = 0
		next.treatResetAt = now
	}

	next.status = Derive(next.stats, next.sleeping, r)
	next.updatedAt = now
	return next
}

// Apply folds an interaction effect into the snapshot. Legality and
// cooldowns must have been checked against this (post-decay) snapshot
// beforehand.
func (p Pet) Apply(t InteractionType, e Effect, now time.Time, r Rules) Pet {
	next := p
	next.stats = p.stats.ApplyDelta(e.Delta)

	if e.Sleeps {
		next.sleeping = true
	}
	if e.Wakes {
		next.sleeping = false
	}
	if e.DailyCap {
		next.treatCount++
	}

	cds := next.Cooldowns()
	cds[t] = now
	next.cooldowns = cds

	next.status = Derive(next.stats, next.sleeping, r)
	next.updatedAt = now
	return next
}

// NextVersion is the commit step: the cache calls it exactly once per
// accepted mutation.
func (p Pet) NextVersion() Pet {
	next := p
	next.version++
	return next
}
