package repository

import (
	"context"

	"github.com/google/uuid"
)

type LivingSpaceRepository interface {
	// GetOrCreateForMatch returns the private space owned by matchID, creating it
	// with every member as admin when it does not exist yet.
	GetOrCreateForMatch(ctx context.Context, matchID int, name string, memberIDs []int) (uuid.UUID, error)
}
