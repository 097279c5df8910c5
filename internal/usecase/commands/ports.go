package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petkeeper/internal/domain/pet"
)

// PetRepository is the durable system of record for pet snapshots. Each call
// is individually atomic; there is no cross-call transaction, which is why
// the log append below is best-effort.
type PetRepository interface {
	Create(ctx context.Context, p pet.Pet) error
	Load(ctx context.Context, id uuid.UUID) (pet.Pet, error)
	Save(ctx context.Context, p pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LogEntry is the immutable record of one successful interaction.
type LogEntry struct {
	PetID     uuid.UUID
	ActorID   uuid.UUID
	Type      pet.InteractionType
	AppliedAt time.Time
	Deltas    pet.Delta
	Status    pet.Status
}

type InteractionLogRepository interface {
	Append(ctx context.Context, e LogEntry) error
}

// SnapshotCache is the working set the engine mutates through. Commit runs
// the mutator inside the pet's exclusive critical section (see the cache
// package for the full contract).
type SnapshotCache interface {
	Get(ctx context.Context, id uuid.UUID) (pet.Pet, error)
	Put(p pet.Pet)
	Commit(ctx context.Context, id uuid.UUID, mutate func(cur pet.Pet) (pet.Pet, error)) (pet.Pet, error)
	Forget(ctx context.Context, id uuid.UUID) error
}

// CooldownGate answers whether an interaction may run now and how long the
// caller must otherwise wait.
type CooldownGate interface {
	CheckAndReserve(p pet.Pet, t pet.InteractionType, now time.Time) (remaining time.Duration, allowed bool)
}
