package readmodel

import (
	"time"

	"github.com/google/uuid"

	"petkeeper/internal/domain/pet"
)

type StatsRM struct {
	Hunger    int
	Happiness int
	Energy    int
	Hygiene   int
}

// PetRM is the display view of a pet; stats reflect lazy decay computed at
// read time against the caller's clock.
type PetRM struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Species   string
	Stats     StatsRM
	Status    string
	Version   int64
	UpdatedAt time.Time
	CreatedAt time.Time
}

// InteractionRM is a row of the append-only interaction log.
type InteractionRM struct {
	ID        int64
	PetID     uuid.UUID
	ActorID   uuid.UUID
	Type      string
	AppliedAt time.Time
	Deltas    StatsRM
	Status    string
}

func PetRMFrom(p pet.Pet) *PetRM {
	return &PetRM{
		ID:      p.ID(),
		OwnerID: p.OwnerID(),
		Name:    p.Name(),
		Species: p.Species(),
		Stats: StatsRM{
			Hunger:    p.Stats().Hunger,
			Happiness: p.Stats().Happiness,
			Energy:    p.Stats().Energy,
			Hygiene:   p.Stats().Hygiene,
		},
		Status:    p.Status().String(),
		Version:   p.Version(),
		UpdatedAt: p.UpdatedAt(),
		CreatedAt: p.CreatedAt(),
	}
}
