package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"go.uber.org/zap"
)

// candidatePoolFactor controls how many profiles are scored per returned suggestion.
const candidatePoolFactor = 5

type Scorer interface {
	Compute(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error)
}

type FeedUseCase struct {
	profileRepo     repository.ProfileRepository
	interactionRepo repository.InteractionRepository
	scorer          Scorer
	defaultLimit    int
	logger          *zap.Logger
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	interactionRepo repository.InteractionRepository,
	scorer Scorer,
	defaultLimit int,
	logger *zap.Logger,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		scorer:          scorer,
		defaultLimit:    defaultLimit,
		logger:          logger,
	}
}

// Suggestion is a candidate flatmate with the pair's scores.
type Suggestion struct {
	UserID        int                         `json:"user_id"`
	Compatibility *domain.CompatibilityResult `json:"compatibility"`
}

// GetSuggestions ranks users with a profile that the caller has not
// interacted with yet by compatibility, then similarity.
func (uc *FeedUseCase) GetSuggestions(ctx context.Context, userID, limit int) ([]*Suggestion, error) {
	if limit <= 0 || limit > uc.defaultLimit {
		limit = uc.defaultLimit
	}

	if _, err := uc.profileRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	seen, err := uc.interactionRepo.GetInteractedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get interacted users: %w", err)
	}
	exclude := append(seen, userID)

	candidates, err := uc.profileRepo.ListUserIDs(ctx, exclude, limit*candidatePoolFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	suggestions := make([]*Suggestion, 0, len(candidates))
	for _, candidateID := range candidates {
		res, err := uc.scorer.Compute(ctx, userID, candidateID)
		if err != nil {
			uc.logger.Warn("skipping candidate", zap.Int("user_id", userID), zap.Int("candidate_id", candidateID), zap.Error(err))
			continue
		}
		if !res.Defined {
			continue
		}
		suggestions = append(suggestions, &Suggestion{UserID: candidateID, Compatibility: res})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i].Compatibility, suggestions[j].Compatibility
		if a.CompatibilityScore != b.CompatibilityScore {
			return a.CompatibilityScore > b.CompatibilityScore
		}
		if a.SimilarityScore != b.SimilarityScore {
			return a.SimilarityScore > b.SimilarityScore
		}
		return suggestions[i].UserID < suggestions[j].UserID
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
