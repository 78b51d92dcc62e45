package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const memberRoleAdmin = "admin"

type livingSpaceRepository struct {
	db *sqlx.DB
}

func NewLivingSpaceRepository(db *sqlx.DB) repository.LivingSpaceRepository {
	return &livingSpaceRepository{db: db}
}

func (r *livingSpaceRepository) GetOrCreateForMatch(ctx context.Context, matchID int, name string, memberIDs []int) (uuid.UUID, error) {
	if len(memberIDs) == 0 {
		return uuid.Nil, errors.New("living space needs at least one member")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var spaceID uuid.UUID
	insert := `
		INSERT INTO living_spaces (id, match_id, name, created_by, is_public, is_active)
		VALUES ($1, $2, $3, $4, FALSE, TRUE)
		ON CONFLICT (match_id) DO NOTHING
		RETURNING id
	`
	err = tx.GetContext(ctx, &spaceID, insert, uuid.New(), matchID, name, memberIDs[0])
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := tx.GetContext(ctx, &spaceID, `SELECT id FROM living_spaces WHERE match_id = $1`, matchID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to load living space: %w", err)
		}
	case err != nil:
		return uuid.Nil, fmt.Errorf("failed to create living space: %w", err)
	}

	member := `
		INSERT INTO living_space_members (living_space_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (living_space_id, user_id) DO NOTHING
	`
	for _, userID := range memberIDs {
		if _, err := tx.ExecContext(ctx, member, spaceID, userID, memberRoleAdmin); err != nil {
			return uuid.Nil, fmt.Errorf("failed to add member %d: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return spaceID, nil
}
