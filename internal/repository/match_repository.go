package repository

import (
	"context"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/google/uuid"
)

type MatchRepository interface {
	// GetOrCreate atomically returns the row for the canonical pair, inserting it
	// from match when absent. created reports whether this call inserted it.
	GetOrCreate(ctx context.Context, match *domain.Match) (stored *domain.Match, created bool, err error)
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID int, limit, offset int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, from, to domain.MatchStatus) error
	// SetPrimary clears every other primary flag held by userID and sets or clears
	// the flag on matchID, in a single transaction.
	SetPrimary(ctx context.Context, matchID, userID int, isPrimary bool) (*domain.Match, error)
	// AttachLivingSpace stores spaceID unless a space is already attached and
	// returns the row as stored.
	AttachLivingSpace(ctx context.Context, matchID int, spaceID uuid.UUID) (*domain.Match, error)
	// DeleteWithInteractions removes the match and the interactions between its
	// users. It fails with domain.ErrLivingSpaceAttached when a space is attached.
	DeleteWithInteractions(ctx context.Context, matchID int) error
	UpdateExplanation(ctx context.Context, matchID int, explanation string) error
}
