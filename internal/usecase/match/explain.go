package match

import (
	"context"
	"fmt"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"go.uber.org/zap"
)

type area struct {
	label string
	score float64
}

// Explain returns the stored explanation for a match, generating and storing
// one on first request.
func (uc *MatchUseCase) Explain(ctx context.Context, matchID, userID int) (string, error) {
	match, err := uc.GetForParticipant(ctx, matchID, userID)
	if err != nil {
		return "", err
	}
	if match.Explanation != nil && *match.Explanation != "" {
		return *match.Explanation, nil
	}

	res, err := uc.scorer.Compute(ctx, match.User1ID, match.User2ID)
	if err != nil {
		return "", fmt.Errorf("failed to compute compatibility: %w", err)
	}
	if !res.Defined {
		return "", domain.ErrProfileNotFound
	}

	text := describe(res)
	if uc.explainer != nil {
		generated, err := uc.explainer.ExplainMatch(ctx, res)
		if err != nil {
			uc.logger.Warn("explanation generator unavailable, using fallback",
				zap.Int("match_id", matchID), zap.Error(err))
		} else {
			text = generated
		}
	}

	if err := uc.matchRepo.UpdateExplanation(ctx, matchID, text); err != nil {
		uc.logger.Warn("failed to store match explanation", zap.Int("match_id", matchID), zap.Error(err))
	}
	return text, nil
}

// describe names the strongest and weakest components of a result.
func describe(res *domain.CompatibilityResult) string {
	bd := res.Breakdown
	areas := []area{
		{"day-to-day habits", bd.LifestyleDetail},
		{"household basics", bd.BasicLifestyle},
		{"personality", bd.Personality},
		{"communication", bd.Communication},
		{"location", bd.Location},
	}

	best, worst := areas[0], areas[0]
	for _, a := range areas[1:] {
		if a.score > best.score {
			best = a
		}
		if a.score < worst.score {
			worst = a
		}
	}

	text := fmt.Sprintf("You are %d%% compatible as flatmates, strongest on %s.", res.CompatibilityScore, best.label)
	if worst.score < 60 {
		text += fmt.Sprintf(" Talk about %s before moving in.", worst.label)
	}
	return text
}
