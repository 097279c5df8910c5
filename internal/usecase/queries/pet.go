package queries

import (
	"context"

	"github.com/google/uuid"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/pkg/clock"
	"petkeeper/internal/usecase/readmodel"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// SnapshotSource is the read side of the working-set cache.
type SnapshotSource interface {
	Get(ctx context.Context, id uuid.UUID) (pet.Pet, error)
}

// PetReadStore serves listing queries straight from storage. Listed rows may
// trail the in-memory working set until the asynchronous writer catches up;
// the per-pet snapshot endpoints are the authoritative view.
type PetReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error)
}

type InteractionReadStore interface {
	ListByPet(ctx context.Context, petID uuid.UUID, limit int) ([]*readmodel.InteractionRM, error)
}

type PetQueries interface {
	GetSnapshot(ctx context.Context, petID uuid.UUID) (*readmodel.PetRM, error)
	GetStats(ctx context.Context, petID uuid.UUID) (*readmodel.StatsRM, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.PetRM, error)
	History(ctx context.Context, petID uuid.UUID, limit int) ([]*readmodel.InteractionRM, error)
}

type petQueriesImpl struct {
	source       SnapshotSource
	petStore     PetReadStore
	interactions InteractionReadStore
	clock        clock.Clock
	rules        pet.Rules
}

func NewPetQueries(
	source SnapshotSource,
	petStore PetReadStore,
	interactions InteractionReadStore,
	clk clock.Clock,
	rules pet.Rules,
) PetQueries {
	return &petQueriesImpl{
		source:       source,
		petStore:     petStore,
		interactions: interactions,
		clock:        clk,
		rules:        rules,
	}
}

// GetSnapshot returns the effective view at read time: decay is computed
// against now without committing anything, so two reads moments apart may
// legitimately differ.
func (q *petQueriesImpl) GetSnapshot(ctx context.Context, petID uuid.UUID) (*readmodel.PetRM, error) {
	p, err := q.source.Get(ctx, petID)
	if err != nil {
		return nil, err
	}
	return readmodel.PetRMFrom(p.Decayed(q.clock.Now(), q.rules)), nil
}

func (q *petQueriesImpl) GetStats(ctx context.Context, petID uuid.UUID) (*readmodel.StatsRM, error) {
	view, err := q.GetSnapshot(ctx, petID)
	if err != nil {
		return nil, err
	}
	return &view.Stats, nil
}

func (q *petQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.PetRM, error) {
	pets, err := q.petStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]*readmodel.PetRM, 0, len(pets))
	for _, p := range pets {
		views = append(views, readmodel.PetRMFrom(p.Decayed(now, q.rules)))
	}
	return views, nil
}

func (q *petQueriesImpl) History(ctx context.Context, petID uuid.UUID, limit int) ([]*readmodel.InteractionRM, error) {
	return q.interactions.ListByPet(ctx, petID, ValidateLimit(limit))
}
