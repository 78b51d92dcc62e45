package match

import (
	"context"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"go.uber.org/zap"
)

// SetPrimary marks matchID as the caller's primary match, or clears the mark.
// Setting it clears every other primary flag the caller holds.
func (uc *MatchUseCase) SetPrimary(ctx context.Context, matchID, userID int, isPrimary bool) (*domain.Match, error) {
	if _, err := uc.GetForParticipant(ctx, matchID, userID); err != nil {
		return nil, err
	}

	match, err := uc.matchRepo.SetPrimary(ctx, matchID, userID, isPrimary)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("primary match updated",
		zap.Int("match_id", matchID),
		zap.Int("user_id", userID),
		zap.Bool("is_primary", isPrimary))
	return match, nil
}
