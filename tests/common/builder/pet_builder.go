//go:build unit || e2e

package builder

import (
	"time"

	dompet "petkeeper/internal/domain/pet"
	reqdto "petkeeper/internal/handler/dto/request"
	"petkeeper/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PetBuilder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Species   string
	Stats     dompet.Stats
	Status    dompet.Status
	Cooldowns map[dompet.InteractionType]time.Time
	Treats    int
	TreatsAt  time.Time
	UpdatedAt time.Time
	Version   int64
	CreatedAt time.Time
}

func NewPetBuilder() *PetBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &PetBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Mochi",
		Species:   "cat",
		Stats:     dompet.FullStats(),
		Status:    dompet.StatusNormal,
		Cooldowns: map[dompet.InteractionType]time.Time{},
		TreatsAt:  now,
		UpdatedAt: now,
		Version:   1,
		CreatedAt: now,
	}
}

func (b *PetBuilder) With(mutate func(*PetBuilder)) *PetBuilder {
	mutate(b)
	return b
}

func (b *PetBuilder) WithStats(s dompet.Stats) *PetBuilder {
	b.Stats = s
	return b
}

func (b *PetBuilder) WithStatus(s dompet.Status) *PetBuilder {
	b.Status = s
	return b
}

func (b *PetBuilder) WithCooldown(t dompet.InteractionType, at time.Time) *PetBuilder {
	b.Cooldowns[t] = at
	return b
}

// Build methods
func (b *PetBuilder) BuildDomain() dompet.Pet {
	return dompet.Reconstruct(
		b.ID, b.OwnerID,
		b.Name, b.Species,
		b.Stats, b.Status, b.Cooldowns,
		b.Treats, b.TreatsAt,
		b.UpdatedAt, b.Version, b.CreatedAt,
	)
}

// BuildNewDomain goes through the creation path instead of Reconstruct, so
// validation applies.
func (b *PetBuilder) BuildNewDomain() (dompet.Pet, error) {
	return dompet.New(b.OwnerID, b.Name, b.Species, b.CreatedAt)
}

func (b *PetBuilder) BuildCreateRequestDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		Name:    b.Name,
		Species: b.Species,
	}
}

func (b *PetBuilder) BuildReadModel() *readmodel.PetRM {
	return readmodel.PetRMFrom(b.BuildDomain())
}
