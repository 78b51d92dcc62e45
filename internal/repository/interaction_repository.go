package repository

import (
	"context"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

type InteractionRepository interface {
	// CreateIfAbsent inserts the interaction unless one exists for the ordered
	// pair, in which case the existing row is returned with created=false.
	CreateIfAbsent(ctx context.Context, interaction *domain.Interaction) (stored *domain.Interaction, created bool, err error)
	GetByUsers(ctx context.Context, actorID, targetID int) (*domain.Interaction, error)
	HasLiked(ctx context.Context, actorID, targetID int) (bool, error)
	// GetPendingLikes returns likes towards targetID from actors the target has
	// not interacted with yet, newest first.
	GetPendingLikes(ctx context.Context, targetID int) ([]*domain.Interaction, error)
	GetInteractedUserIDs(ctx context.Context, actorID int) ([]int, error)
}
