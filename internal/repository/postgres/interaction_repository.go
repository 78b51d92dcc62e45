package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) CreateIfAbsent(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, bool, error) {
	query := `
		INSERT INTO match_interactions (actor_id, target_id, interaction_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, target_id) DO NOTHING
		RETURNING *
	`
	var stored domain.Interaction
	err := r.db.GetContext(ctx, &stored, query, interaction.ActorID, interaction.TargetID, interaction.Type)
	if err == nil {
		return &stored, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	existing, err := r.GetByUsers(ctx, interaction.ActorID, interaction.TargetID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *interactionRepository) GetByUsers(ctx context.Context, actorID, targetID int) (*domain.Interaction, error) {
	var interaction domain.Interaction
	query := `SELECT * FROM match_interactions WHERE actor_id = $1 AND target_id = $2`
	err := r.db.GetContext(ctx, &interaction, query, actorID, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInteractionNotFound
		}
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) HasLiked(ctx context.Context, actorID, targetID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM match_interactions
			WHERE actor_id = $1 AND target_id = $2 AND interaction_type IN ($3, $4)
		)
	`
	err := r.db.GetContext(ctx, &exists, query, actorID, targetID, domain.InteractionLike, domain.InteractionSuperLike)
	return exists, err
}

func (r *interactionRepository) GetPendingLikes(ctx context.Context, targetID int) ([]*domain.Interaction, error) {
	likes := []*domain.Interaction{}
	query := `
		SELECT i.* FROM match_interactions i
		WHERE i.target_id = $1
		  AND i.interaction_type IN ($2, $3)
		  AND NOT EXISTS (
			SELECT 1 FROM match_interactions back
			WHERE back.actor_id = $1 AND back.target_id = i.actor_id
		  )
		ORDER BY i.created_at DESC
	`
	err := r.db.SelectContext(ctx, &likes, query, targetID, domain.InteractionLike, domain.InteractionSuperLike)
	return likes, err
}

func (r *interactionRepository) GetInteractedUserIDs(ctx context.Context, actorID int) ([]int, error) {
	ids := []int{}
	err := r.db.SelectContext(ctx, &ids, `SELECT target_id FROM match_interactions WHERE actor_id = $1`, actorID)
	return ids, err
}
