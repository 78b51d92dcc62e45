package swipe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	ResponseAccept  = "accept"
	ResponseDecline = "decline"
)

// NotificationSink delivers best-effort notifications. Errors are logged and
// never undo the operation that triggered them.
type NotificationSink interface {
	MatchRequest(ctx context.Context, recipientID, actorID int) error
	MatchCreated(ctx context.Context, recipientID, actorID, matchID int) error
}

// MatchMaker turns a reciprocated like into a match.
type MatchMaker interface {
	TryCreateMatch(ctx context.Context, actorID, targetID int) (*domain.Match, bool, error)
}

type Scorer interface {
	Compute(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error)
}

type SwipeUseCase struct {
	interactionRepo repository.InteractionRepository
	matches         MatchMaker
	scorer          Scorer
	notifier        NotificationSink
	validate        *validator.Validate
	logger          *zap.Logger
}

func NewSwipeUseCase(
	interactionRepo repository.InteractionRepository,
	matches MatchMaker,
	scorer Scorer,
	notifier NotificationSink,
	logger *zap.Logger,
) *SwipeUseCase {
	return &SwipeUseCase{
		interactionRepo: interactionRepo,
		matches:         matches,
		scorer:          scorer,
		notifier:        notifier,
		validate:        validator.New(),
		logger:          logger,
	}
}

// InteractionRequest represents a swipe action
type InteractionRequest struct {
	TargetID int                    `json:"target_id" binding:"required" validate:"required,gt=0"`
	Type     domain.InteractionType `json:"type" binding:"required" validate:"required,oneof=like pass super_like block"`
}

// RespondRequest answers an incoming like
type RespondRequest struct {
	ActorID  int    `json:"actor_id" binding:"required" validate:"required,gt=0"`
	Response string `json:"response" binding:"required" validate:"required,oneof=accept decline"`
}

// RecordResult reports whether the interaction was new and, for likes that
// completed a pair, the match id.
type RecordResult struct {
	Created     bool                `json:"created"`
	Interaction *domain.Interaction `json:"interaction"`
	MatchID     *int                `json:"match_id,omitempty"`
}

// IncomingRequest is a like the user has not answered yet.
type IncomingRequest struct {
	ActorID       int                         `json:"actor_id"`
	Type          domain.InteractionType      `json:"type"`
	CreatedAt     time.Time                   `json:"created_at"`
	Compatibility *domain.CompatibilityResult `json:"compatibility"`
}

// RecordInteraction stores the actor's decision about target. Repeating it is
// harmless: the first interaction wins and created is false.
func (uc *SwipeUseCase) RecordInteraction(ctx context.Context, actorID int, req *InteractionRequest) (*RecordResult, error) {
	if actorID == req.TargetID {
		return nil, domain.ErrCannotInteractWithSelf
	}
	if !req.Type.IsValid() {
		return nil, domain.ErrInvalidInteractionType
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	stored, created, err := uc.interactionRepo.CreateIfAbsent(ctx, &domain.Interaction{
		ActorID:  actorID,
		TargetID: req.TargetID,
		Type:     req.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}
	metrics.InteractionsTotal.WithLabelValues(string(stored.Type), strconv.FormatBool(created)).Inc()

	result := &RecordResult{Created: created, Interaction: stored}
	if !stored.Type.IsLike() {
		return result, nil
	}

	match, matchCreated, err := uc.matches.TryCreateMatch(ctx, actorID, req.TargetID)
	if err != nil {
		return nil, err
	}

	switch {
	case match != nil:
		result.MatchID = &match.ID
		if matchCreated {
			uc.notify("match_created", actorID, func() error {
				return uc.notifier.MatchCreated(ctx, req.TargetID, actorID, match.ID)
			})
			uc.notify("match_created", req.TargetID, func() error {
				return uc.notifier.MatchCreated(ctx, actorID, req.TargetID, match.ID)
			})
		}
	case created:
		uc.notify("match_request", req.TargetID, func() error {
			return uc.notifier.MatchRequest(ctx, req.TargetID, actorID)
		})
	}

	return result, nil
}

func (uc *SwipeUseCase) notify(kind string, recipientID int, send func() error) {
	if uc.notifier == nil {
		return
	}
	if err := send(); err != nil {
		metrics.NotificationFailures.WithLabelValues(kind).Inc()
		uc.logger.Warn("notification failed",
			zap.String("kind", kind),
			zap.Int("user_id", recipientID),
			zap.Error(err))
	}
}

func (uc *SwipeUseCase) HasLiked(ctx context.Context, actorID, targetID int) (bool, error) {
	return uc.interactionRepo.HasLiked(ctx, actorID, targetID)
}

// ListIncomingRequests returns unanswered likes towards userID, newest first,
// each with the pair's compatibility.
func (uc *SwipeUseCase) ListIncomingRequests(ctx context.Context, userID int) ([]*IncomingRequest, error) {
	likes, err := uc.interactionRepo.GetPendingLikes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incoming likes: %w", err)
	}

	out := make([]*IncomingRequest, 0, len(likes))
	for _, like := range likes {
		res, err := uc.scorer.Compute(ctx, userID, like.ActorID)
		if err != nil {
			uc.logger.Warn("compatibility unavailable for request",
				zap.Int("user_id", userID), zap.Int("actor_id", like.ActorID), zap.Error(err))
			res = domain.UndefinedCompatibility()
		}
		out = append(out, &IncomingRequest{
			ActorID:       like.ActorID,
			Type:          like.Type,
			CreatedAt:     like.CreatedAt,
			Compatibility: res,
		})
	}
	return out, nil
}

// RespondToRequest accepts (likes back) or declines (passes on) an incoming like.
func (uc *SwipeUseCase) RespondToRequest(ctx context.Context, userID int, req *RespondRequest) (*RecordResult, error) {
	if req.Response != ResponseAccept && req.Response != ResponseDecline {
		return nil, domain.ErrInvalidResponseType
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	request, err := uc.interactionRepo.GetByUsers(ctx, req.ActorID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInteractionNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to load request: %w", err)
	}
	if !request.Type.IsLike() {
		return nil, domain.ErrRequestNotFound
	}

	answer := domain.InteractionPass
	if req.Response == ResponseAccept {
		answer = domain.InteractionLike
	}

	// Answering again the same way is a no-op; flipping an earlier answer is not allowed.
	previous, err := uc.interactionRepo.GetByUsers(ctx, userID, req.ActorID)
	switch {
	case err == nil && previous.Type.IsLike() != answer.IsLike():
		return nil, domain.ErrRequestAlreadyAnswered
	case err != nil && !errors.Is(err, domain.ErrInteractionNotFound):
		return nil, fmt.Errorf("failed to load previous answer: %w", err)
	}

	return uc.RecordInteraction(ctx, userID, &InteractionRequest{TargetID: req.ActorID, Type: answer})
}
