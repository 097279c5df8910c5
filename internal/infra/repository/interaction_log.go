package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"petkeeper/internal/infra"
	"petkeeper/internal/usecase/commands"
	"petkeeper/internal/usecase/readmodel"
)

type InteractionLogRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionLogRepository(pool *pgxpool.Pool) *InteractionLogRepository {
	return &InteractionLogRepository{pool: pool}
}

func (r *InteractionLogRepository) Append(ctx context.Context, e commands.LogEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interaction_log (pet_id, actor_id, type, applied_at, d_hunger, d_happiness, d_energy, d_hygiene, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.PetID, e.ActorID, e.Type.String(), e.AppliedAt,
		e.Deltas.Hunger, e.Deltas.Happiness, e.Deltas.Energy, e.Deltas.Hygiene,
		e.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append interaction log", err)
	}
	return nil
}

func (r *InteractionLogRepository) ListByPet(ctx context.Context, petID uuid.UUID, limit int) ([]*readmodel.InteractionRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, pet_id, actor_id, type, applied_at, d_hunger, d_happiness, d_energy, d_hygiene, status
		FROM interaction_log
		WHERE pet_id = $1
		ORDER BY id DESC
		LIMIT $2`,
		petID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query interaction log", err)
	}
	defer rows.Close()

	var out []*readmodel.InteractionRM
	for rows.Next() {
		var rm readmodel.InteractionRM
		if err := rows.Scan(
			&rm.ID, &rm.PetID, &rm.ActorID, &rm.Type, &rm.AppliedAt,
			&rm.Deltas.Hunger, &rm.Deltas.Happiness, &rm.Deltas.Energy, &rm.Deltas.Hygiene,
			&rm.Status,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan interaction log row", err)
		}
		out = append(out, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read interaction log", err)
	}
	return out, nil
}
