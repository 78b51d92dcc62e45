package repository

import (
	"context"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.PersonalityProfile, error)
	// Upsert clamps scores into [0,100] before writing.
	Upsert(ctx context.Context, profile *domain.PersonalityProfile) error
	// ListUserIDs returns users with a personality profile, excluding the given ids.
	ListUserIDs(ctx context.Context, exclude []int, limit int) ([]int, error)
}
