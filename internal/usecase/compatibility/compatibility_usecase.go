package compatibility

import (
	"context"
	"fmt"

	"github.com/gdugdh24/roomies-backend/internal/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

const (
	modeComposite = "composite"
	modeAuto      = "auto"
)

// Cache stores defined results per unordered pair. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, mode string, userA, userB int) (*domain.CompatibilityResult, error)
	Set(ctx context.Context, mode string, userA, userB int, res *domain.CompatibilityResult) error
	InvalidateUser(ctx context.Context, userID int) error
}

type CompatibilityUseCase struct {
	engine *compatibility.Engine
	cache  Cache
	logger *zap.Logger
}

// NewCompatibilityUseCase accepts a nil cache.
func NewCompatibilityUseCase(engine *compatibility.Engine, cache Cache, logger *zap.Logger) *CompatibilityUseCase {
	return &CompatibilityUseCase{
		engine: engine,
		cache:  cache,
		logger: logger,
	}
}

// Compute returns the composite result for two users.
func (uc *CompatibilityUseCase) Compute(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error) {
	return uc.compute(ctx, modeComposite, userA, userB, uc.engine.Compute)
}

// ComputeAuto uses the legacy formula when either user skipped the detailed survey.
func (uc *CompatibilityUseCase) ComputeAuto(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error) {
	return uc.compute(ctx, modeAuto, userA, userB, uc.engine.ComputeAuto)
}

type computeFunc func(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error)

func (uc *CompatibilityUseCase) compute(ctx context.Context, mode string, userA, userB int, fn computeFunc) (*domain.CompatibilityResult, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, mode, userA, userB)
		switch {
		case err != nil:
			uc.logger.Warn("compatibility cache read failed", zap.Int("user_a", userA), zap.Int("user_b", userB), zap.Error(err))
		case cached != nil:
			metrics.CompatibilityCache.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CompatibilityCache.WithLabelValues("miss").Inc()
		}
	}

	res, err := fn(ctx, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to compute compatibility: %w", err)
	}
	if !res.Defined {
		return res, nil
	}

	metrics.CompatibilityScores.WithLabelValues(string(res.Mode)).Observe(float64(res.CompatibilityScore))

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, mode, userA, userB, res); err != nil {
			uc.logger.Warn("compatibility cache write failed", zap.Int("user_a", userA), zap.Int("user_b", userB), zap.Error(err))
		}
	}
	return res, nil
}

// Invalidate drops cached results for userID after their profile changed.
func (uc *CompatibilityUseCase) Invalidate(ctx context.Context, userID int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateUser(ctx, userID); err != nil {
		uc.logger.Warn("compatibility cache invalidation failed", zap.Int("user_id", userID), zap.Error(err))
	}
}
