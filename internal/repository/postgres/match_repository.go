package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetOrCreate(ctx context.Context, match *domain.Match) (*domain.Match, bool, error) {
	user1ID, user2ID := domain.Canonicalize(match.User1ID, match.User2ID)
	status := match.Status
	if status == "" {
		status = domain.MatchStatusPending
	}

	// The no-op DO UPDATE makes RETURNING yield the row on conflict too; xmax is
	// zero only for a freshly inserted tuple.
	query := `
		INSERT INTO matches (user1_id, user2_id, compatibility_score, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user1_id, user2_id) DO UPDATE SET updated_at = matches.updated_at
		RETURNING *, (xmax = 0) AS inserted
	`
	var row struct {
		domain.Match
		Inserted bool `db:"inserted"`
	}
	if err := r.db.GetContext(ctx, &row, query, user1ID, user2ID, match.CompatibilityScore, status); err != nil {
		return nil, false, err
	}
	return &row.Match, row.Inserted, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	return r.get(ctx, r.db, `SELECT * FROM matches WHERE id = $1`, id)
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error) {
	user1ID, user2ID = domain.Canonicalize(user1ID, user2ID)
	return r.get(ctx, r.db, `SELECT * FROM matches WHERE user1_id = $1 AND user2_id = $2`, user1ID, user2ID)
}

func (r *matchRepository) get(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) (*domain.Match, error) {
	var match domain.Match
	if err := sqlx.GetContext(ctx, q, &match, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error) {
	matches := []*domain.Match{}
	query := `
		SELECT * FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY
			CASE WHEN (user1_id = $1 AND is_primary_for_user1) OR (user2_id = $1 AND is_primary_for_user2) THEN 0 ELSE 1 END,
			compatibility_score DESC,
			created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &matches, query, userID, limit, offset)
	return matches, err
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, from, to domain.MatchStatus) error {
	query := `UPDATE matches SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`
	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}
	// Either the row is gone or someone moved it first.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrInvalidStatusTransition
}

func (r *matchRepository) SetPrimary(ctx context.Context, matchID, userID int, isPrimary bool) (*domain.Match, error) {
	var updated *domain.Match
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		// Serialises primary changes per user across all of their matches.
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
			return err
		}

		match, err := r.get(ctx, tx, `SELECT * FROM matches WHERE id = $1 FOR UPDATE`, matchID)
		if err != nil {
			return err
		}
		if !match.HasUser(userID) {
			return domain.ErrNotParticipant
		}

		if isPrimary {
			clearQuery := `
				UPDATE matches SET
					is_primary_for_user1 = CASE WHEN user1_id = $1 THEN FALSE ELSE is_primary_for_user1 END,
					is_primary_for_user2 = CASE WHEN user2_id = $1 THEN FALSE ELSE is_primary_for_user2 END,
					updated_at = NOW()
				WHERE id <> $2
				  AND ((user1_id = $1 AND is_primary_for_user1) OR (user2_id = $1 AND is_primary_for_user2))
			`
			if _, err := tx.ExecContext(ctx, clearQuery, userID, matchID); err != nil {
				return fmt.Errorf("failed to clear primary flags: %w", err)
			}
		}

		column := "is_primary_for_user2"
		if match.User1ID == userID {
			column = "is_primary_for_user1"
		}
		set := fmt.Sprintf(`UPDATE matches SET %s = $1, updated_at = NOW() WHERE id = $2 RETURNING *`, column)
		updated, err = r.get(ctx, tx, set, isPrimary, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *matchRepository) AttachLivingSpace(ctx context.Context, matchID int, spaceID uuid.UUID) (*domain.Match, error) {
	query := `
		UPDATE matches SET living_space_id = $2, updated_at = NOW()
		WHERE id = $1 AND living_space_id IS NULL
		RETURNING *
	`
	match, err := r.get(ctx, r.db, query, matchID, spaceID)
	if errors.Is(err, domain.ErrMatchNotFound) {
		// Already attached, or missing; GetByID tells the two apart.
		return r.GetByID(ctx, matchID)
	}
	return match, err
}

func (r *matchRepository) DeleteWithInteractions(ctx context.Context, matchID int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		match, err := r.get(ctx, tx, `SELECT * FROM matches WHERE id = $1 FOR UPDATE`, matchID)
		if err != nil {
			return err
		}
		if match.HasLivingSpace() {
			return domain.ErrLivingSpaceAttached
		}

		deleteInteractions := `
			DELETE FROM match_interactions
			WHERE (actor_id = $1 AND target_id = $2) OR (actor_id = $2 AND target_id = $1)
		`
		if _, err := tx.ExecContext(ctx, deleteInteractions, match.User1ID, match.User2ID); err != nil {
			return fmt.Errorf("failed to delete interactions: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, matchID); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}
		return nil
	})
}

func (r *matchRepository) UpdateExplanation(ctx context.Context, matchID int, explanation string) error {
	query := `UPDATE matches SET match_explanation = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, explanation, matchID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
