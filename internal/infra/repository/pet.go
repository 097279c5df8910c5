package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/infra"
)

type PetRepository struct {
	pool *pgxpool.Pool
}

func NewPetRepository(pool *pgxpool.Pool) *PetRepository {
	return &PetRepository{pool: pool}
}

const petColumns = `id, owner_id, name, species, hunger, happiness, energy, hygiene,
	status, cooldowns, treat_count, treat_reset_at, updated_at, version, created_at`

func (r *PetRepository) Create(ctx context.Context, p pet.Pet) error {
	cds, err := marshalCooldowns(p)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode cooldowns", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		p.ID(), p.OwnerID(), p.Name(), p.Species(),
		p.Stats().Hunger, p.Stats().Happiness, p.Stats().Energy, p.Stats().Hygiene,
		p.Status().String(), cds, p.TreatCount(), p.TreatResetAt(),
		p.UpdatedAt(), p.Version(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) Load(ctx context.Context, id uuid.UUID) (pet.Pet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pet.Pet{}, infra.WrapRepoErr(infra.KindNotFound, "pet not found", err)
		}
		return pet.Pet{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to load pet", err)
	}
	return p, nil
}

// Save overwrites the durable row with the given snapshot. The in-memory
// working set is the writer of record, so this is a plain last-write wins;
// version ordering is enforced upstream by the cache.
func (r *PetRepository) Save(ctx context.Context, p pet.Pet) error {
	cds, err := marshalCooldowns(p)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode cooldowns", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE pets SET
			hunger = $2, happiness = $3, energy = $4, hygiene = $5,
			status = $6, cooldowns = $7, treat_count = $8, treat_reset_at = $9,
			updated_at = $10, version = $11
		WHERE id = $1 AND version <= $11`,
		p.ID(),
		p.Stats().Hunger, p.Stats().Happiness, p.Stats().Energy, p.Stats().Hygiene,
		p.Status().String(), cds, p.TreatCount(), p.TreatResetAt(),
		p.UpdatedAt(), p.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "pet row missing or newer than snapshot", nil)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "pet not found", nil)
	}
	return nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list pets", err)
	}
	defer rows.Close()

	var pets []pet.Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan pet", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list pets", err)
	}
	return pets, nil
}

func marshalCooldowns(p pet.Pet) ([]byte, error) {
	return json.Marshal(p.Cooldowns())
}

func scanPet(row pgx.Row) (pet.Pet, error) {
	var (
		id, ownerID                        uuid.UUID
		name, species, status              string
		hunger, happiness, energy, hygiene int
		cooldownsRaw                       []byte
		treatCount                         int
		treatResetAt, updatedAt, createdAt time.Time
		version                            int64
	)
	err := row.Scan(
		&id, &ownerID, &name, &species,
		&hunger, &happiness, &energy, &hygiene,
		&status, &cooldownsRaw, &treatCount, &treatResetAt,
		&updatedAt, &version, &createdAt,
	)
	if err != nil {
		return pet.Pet{}, err
	}

	cooldowns := map[pet.InteractionType]time.Time{}
	if len(cooldownsRaw) > 0 {
		if err := json.Unmarshal(cooldownsRaw, &cooldowns); err != nil {
			return pet.Pet{}, err
		}
	}

	st, err := pet.NewStatus(status)
	if err != nil {
		return pet.Pet{}, err
	}

	return pet.Reconstruct(
		id, ownerID, name, species,
		pet.Stats{Hunger: hunger, Happiness: happiness, Energy: energy, Hygiene: hygiene},
		st, cooldowns, treatCount, treatResetAt, updatedAt, version, createdAt,
	), nil
}
