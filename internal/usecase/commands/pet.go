package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/infra"
	"petkeeper/internal/pkg/clock"
	"petkeeper/internal/pkg/config"
	"petkeeper/internal/pkg/errs"
)

// CooldownError carries the wait time so the caller can render an exact
// message without re-deriving it. errors.Is(err, errs.ErrOnCooldown) holds.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("interaction on cooldown for another %s", e.Remaining)
}

func (e *CooldownError) Is(target error) bool {
	return target == errs.ErrOnCooldown
}

// ApplyResult is the outcome of a successful interaction.
type ApplyResult struct {
	Snapshot pet.Pet
	// Deltas is the observed stat change (after clamping), not the nominal
	// effect of the interaction type.
	Deltas pet.Delta
	// Deferred reports that the in-memory commit succeeded but durability
	// is lagging behind.
	Deferred bool
}

type PetCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, species string) (pet.Pet, error)
	Apply(ctx context.Context, petID, actorID uuid.UUID, t pet.InteractionType) (*ApplyResult, error)
	Remove(ctx context.Context, petID, actorID uuid.UUID) error
}

type petCommandsImpl struct {
	cache SnapshotCache
	gate  CooldownGate
	pets  PetRepository
	log   InteractionLogRepository
	clock clock.Clock
	rules pet.Rules
	cfg   config.GameConfig
}

func NewPetCommands(
	cache SnapshotCache,
	gate CooldownGate,
	pets PetRepository,
	log InteractionLogRepository,
	clk clock.Clock,
	rules pet.Rules,
	cfg config.GameConfig,
) PetCommands {
	return &petCommandsImpl{
		cache: cache,
		gate:  gate,
		pets:  pets,
		log:   log,
		clock: clk,
		rules: rules,
		cfg:   cfg,
	}
}

// Create is storage-first: the row exists before the cache learns about the
// pet, so a crash right after creation cannot lose it.
func (c *petCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, name, species string) (pet.Pet, error) {
	p, err := pet.New(ownerID, name, species, c.clock.Now())
	if err != nil {
		return pet.Pet{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.pets.Create(ctx, p); err != nil {
		return pet.Pet{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.cache.Put(p)
	return p, nil
}

// Apply validates and applies one interaction as a single atomic unit:
// authorize, decay, legality, cooldown, effect, status derivation and the
// version bump all happen inside the pet's critical section. Either the
// whole thing commits or nothing does.
func (c *petCommandsImpl) Apply(ctx context.Context, petID, actorID uuid.UUID, t pet.InteractionType) (*ApplyResult, error) {
	effect, ok := pet.EffectFor(t)
	if !ok {
		return nil, errs.Mark(pet.ErrInvalidInteraction, errs.ErrDomainValidation)
	}

	var (
		deltas    pet.Delta
		appliedAt time.Time
	)
	mutate := func(cur pet.Pet) (pet.Pet, error) {
		if cur.OwnerID() != actorID {
			return pet.Pet{}, errs.ErrNotPetOwner
		}

		now := c.clock.Now()
		eff := cur.Decayed(now, c.rules)

		if !effect.LegalIn(eff.Status()) || !effect.MeetsStatRequirements(eff.Stats()) {
			return pet.Pet{}, errs.ErrIllegalInState
		}
		if effect.DailyCap && eff.TreatCount() >= c.rules.TreatDailyLimit {
			return pet.Pet{}, errs.ErrDailyLimitHit
		}
		if remaining, allowed := c.gate.CheckAndReserve(eff, t, now); !allowed {
			return pet.Pet{}, &CooldownError{Remaining: remaining}
		}

		next := eff.Apply(t, effect, now, c.rules)
		deltas = next.Stats().Diff(eff.Stats())
		appliedAt = now
		return next, nil
	}

	var (
		snap pet.Pet
		err  error
	)
	for attempt := 0; ; attempt++ {
		snap, err = c.cache.Commit(ctx, petID, mutate)
		if !errors.Is(err, errs.ErrVersionConflict) {
			break
		}
		if attempt >= c.cfg.ConflictRetryLimit {
			return nil, errs.Mark(err, errs.ErrTooMuchContention)
		}
	}

	deferred := false
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrPersistenceDeferred):
		deferred = true
	default:
		return nil, err
	}

	// Log append is best-effort: the snapshot commit is already durable in
	// memory and (eventually) in storage; a lost log row is not worth
	// rolling that back.
	entry := LogEntry{
		PetID:     petID,
		ActorID:   actorID,
		Type:      t,
		AppliedAt: appliedAt,
		Deltas:    deltas,
		Status:    snap.Status(),
	}
	if logErr := c.log.Append(ctx, entry); logErr != nil {
		slog.Warn("failed to append interaction log", "pet_id", petID, "type", t, "error", logErr)
	}

	return &ApplyResult{Snapshot: snap, Deltas: deltas, Deferred: deferred}, nil
}

// Remove deletes a pet. Rare and not concurrency-critical: the cache entry
// is flushed and dropped, then the row goes away.
func (c *petCommandsImpl) Remove(ctx context.Context, petID, actorID uuid.UUID) error {
	cur, err := c.cache.Get(ctx, petID)
	if err != nil {
		return err
	}
	if cur.OwnerID() != actorID {
		return errs.ErrNotPetOwner
	}

	if err := c.cache.Forget(ctx, petID); err != nil {
		return err
	}
	if err := c.pets.Delete(ctx, petID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPetNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
