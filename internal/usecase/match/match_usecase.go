package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scorer computes pair compatibility.
type Scorer interface {
	Compute(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error)
}

// LivingSpaceProvisioner creates the shared space for a match. It must be
// idempotent per match.
type LivingSpaceProvisioner interface {
	GetOrCreateForMatch(ctx context.Context, matchID int, name string, memberIDs []int) (uuid.UUID, error)
}

// Explainer writes a short human-readable note about a pair.
type Explainer interface {
	ExplainMatch(ctx context.Context, result *domain.CompatibilityResult) (string, error)
}

type MatchUseCase struct {
	matchRepo       repository.MatchRepository
	interactionRepo repository.InteractionRepository
	scorer          Scorer
	spaces          LivingSpaceProvisioner
	explainer       Explainer
	logger          *zap.Logger
}

// NewMatchUseCase accepts a nil explainer; explanations then use the built-in text.
func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	interactionRepo repository.InteractionRepository,
	scorer Scorer,
	spaces LivingSpaceProvisioner,
	explainer Explainer,
	logger *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:       matchRepo,
		interactionRepo: interactionRepo,
		scorer:          scorer,
		spaces:          spaces,
		explainer:       explainer,
		logger:          logger,
	}
}

// MatchSummary is a match seen from one participant.
type MatchSummary struct {
	MatchID            int                `json:"match_id"`
	OtherUserID        int                `json:"other_user_id"`
	CompatibilityScore float64            `json:"compatibility_score"`
	Status             domain.MatchStatus `json:"status"`
	IsPrimary          bool               `json:"is_primary"`
	LivingSpaceID      *uuid.UUID         `json:"living_space_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// TryCreateMatch creates the mutual match for the pair when targetID has
// already liked actorID. Concurrent calls for the same pair converge on one
// row; created is true only for the call that inserted it.
func (uc *MatchUseCase) TryCreateMatch(ctx context.Context, actorID, targetID int) (*domain.Match, bool, error) {
	liked, err := uc.interactionRepo.HasLiked(ctx, targetID, actorID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check reciprocal like: %w", err)
	}
	if !liked {
		return nil, false, nil
	}

	user1ID, user2ID := domain.Canonicalize(actorID, targetID)

	var score float64
	res, err := uc.scorer.Compute(ctx, user1ID, user2ID)
	if err != nil {
		// The score is informational; a mutual like still becomes a match.
		uc.logger.Warn("compatibility unavailable for new match",
			zap.Int("user1_id", user1ID), zap.Int("user2_id", user2ID), zap.Error(err))
	} else if res.Defined {
		score = float64(res.CompatibilityScore)
	}

	match, created, err := uc.matchRepo.GetOrCreate(ctx, &domain.Match{
		User1ID:            user1ID,
		User2ID:            user2ID,
		CompatibilityScore: score,
		Status:             domain.MatchStatusMutual,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}

	if created {
		metrics.MatchesCreated.Inc()
		uc.logger.Info("match created",
			zap.Int("match_id", match.ID),
			zap.Int("user1_id", user1ID),
			zap.Int("user2_id", user2ID),
			zap.Float64("compatibility_score", score))
		return match, true, nil
	}

	// A row left over from a request flow gets promoted.
	if match.Status != domain.MatchStatusMutual && match.Status.CanTransitionTo(domain.MatchStatusMutual) {
		err := uc.matchRepo.UpdateStatus(ctx, match.ID, match.Status, domain.MatchStatusMutual)
		if err != nil && !errors.Is(err, domain.ErrInvalidStatusTransition) {
			return nil, false, fmt.Errorf("failed to promote match: %w", err)
		}
		if match, err = uc.matchRepo.GetByID(ctx, match.ID); err != nil {
			return nil, false, err
		}
	}
	return match, false, nil
}

// GetForParticipant loads a match and checks that userID takes part in it.
func (uc *MatchUseCase) GetForParticipant(ctx context.Context, matchID, userID int) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(userID) {
		return nil, domain.ErrNotParticipant
	}
	return match, nil
}

// Unmatch removes the match and both interaction rows so the pair can meet
// again in suggestions.
func (uc *MatchUseCase) Unmatch(ctx context.Context, matchID, userID int) error {
	match, err := uc.GetForParticipant(ctx, matchID, userID)
	if err != nil {
		return err
	}
	if match.HasLivingSpace() {
		return domain.ErrLivingSpaceAttached
	}

	if err := uc.matchRepo.DeleteWithInteractions(ctx, matchID); err != nil {
		if errors.Is(err, domain.ErrLivingSpaceAttached) || errors.Is(err, domain.ErrMatchNotFound) {
			return err
		}
		return fmt.Errorf("failed to unmatch: %w", err)
	}

	metrics.Unmatches.Inc()
	uc.logger.Info("match removed", zap.Int("match_id", matchID), zap.Int("user_id", userID))
	return nil
}

// GetOrCreateSharedSpace returns the living space attached to the match,
// provisioning one on first use.
func (uc *MatchUseCase) GetOrCreateSharedSpace(ctx context.Context, matchID, userID int) (uuid.UUID, error) {
	match, err := uc.GetForParticipant(ctx, matchID, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if match.LivingSpaceID != nil {
		return *match.LivingSpaceID, nil
	}

	name := fmt.Sprintf("Flat of %d & %d", match.User1ID, match.User2ID)
	spaceID, err := uc.spaces.GetOrCreateForMatch(ctx, match.ID, name, []int{match.User1ID, match.User2ID})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to provision living space: %w", err)
	}

	updated, err := uc.matchRepo.AttachLivingSpace(ctx, match.ID, spaceID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to attach living space: %w", err)
	}
	if updated.LivingSpaceID == nil {
		return uuid.Nil, fmt.Errorf("living space for match %d was not stored", match.ID)
	}
	return *updated.LivingSpaceID, nil
}

// UpdateStatus moves a match along the status machine.
func (uc *MatchUseCase) UpdateStatus(ctx context.Context, matchID, userID int, next domain.MatchStatus) (*domain.Match, error) {
	match, err := uc.GetForParticipant(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}
	if !next.IsValid() || !match.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := uc.matchRepo.UpdateStatus(ctx, matchID, match.Status, next); err != nil {
		return nil, err
	}
	return uc.matchRepo.GetByID(ctx, matchID)
}

// ListMatches returns the caller's matches, primary first, then by score.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID, limit, offset int) ([]*MatchSummary, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	out := make([]*MatchSummary, 0, len(matches))
	for _, m := range matches {
		other, _ := m.GetOtherUserID(userID)
		out = append(out, &MatchSummary{
			MatchID:            m.ID,
			OtherUserID:        other,
			CompatibilityScore: m.CompatibilityScore,
			Status:             m.Status,
			IsPrimary:          m.IsPrimaryFor(userID),
			LivingSpaceID:      m.LivingSpaceID,
			CreatedAt:          m.CreatedAt,
		})
	}
	return out, nil
}
