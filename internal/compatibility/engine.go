package compatibility

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

// ProfileSource supplies personality profiles. It must return
// domain.ErrProfileNotFound for users that have not completed the survey.
type ProfileSource interface {
	GetByUserID(ctx context.Context, userID int) (*domain.PersonalityProfile, error)
}

// Engine loads profiles and scores pairs. It holds no state besides the source
// and never caches results.
type Engine struct {
	profiles ProfileSource
}

func NewEngine(profiles ProfileSource) *Engine {
	return &Engine{profiles: profiles}
}

// Compute returns the composite result for two users. A missing profile yields an
// undefined result rather than an error.
func (e *Engine) Compute(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error) {
	a, b, err := e.load(ctx, userA, userB)
	if err != nil || a == nil || b == nil {
		return domain.UndefinedCompatibility(), err
	}
	return Score(a, b), nil
}

// ComputeAuto falls back to the legacy single-score formula when either user has
// not answered the detailed lifestyle survey.
func (e *Engine) ComputeAuto(ctx context.Context, userA, userB int) (*domain.CompatibilityResult, error) {
	a, b, err := e.load(ctx, userA, userB)
	if err != nil || a == nil || b == nil {
		return domain.UndefinedCompatibility(), err
	}
	if len(a.LifestyleAnswers) == 0 || len(b.LifestyleAnswers) == 0 {
		return LegacyScore(a, b), nil
	}
	return Score(a, b), nil
}

func (e *Engine) load(ctx context.Context, userA, userB int) (*domain.PersonalityProfile, *domain.PersonalityProfile, error) {
	a, err := e.profiles.GetByUserID(ctx, userA)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load profile for user %d: %w", userA, err)
	}
	b, err := e.profiles.GetByUserID(ctx, userB)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load profile for user %d: %w", userB, err)
	}
	return a, b, nil
}

// Score computes the composite compatibility and similarity of two profiles.
func Score(a, b *domain.PersonalityProfile) *domain.CompatibilityResult {
	bd := domain.Breakdown{
		LifestyleDetail: LifestyleDetailScore(a.LifestyleAnswers, b.LifestyleAnswers),
		BasicLifestyle:  BasicLifestyleScore(a.LifestyleFlags, b.LifestyleFlags, domain.ScoringComposite),
		Personality:     TraitScore(a.Traits, b.Traits, domain.ScoringComposite),
		Communication:   CommunicationScore(a.CommunicationStyle, b.CommunicationStyle, domain.ScoringComposite),
		Location:        LocationScore(a.PreferredCity, b.PreferredCity),
	}

	compatibility := 0.50*bd.LifestyleDetail +
		0.15*bd.BasicLifestyle +
		0.20*bd.Personality +
		0.10*bd.Communication +
		0.05*bd.Location

	similarity := 0.60*bd.LifestyleDetail +
		0.30*bd.Personality +
		0.10*bd.BasicLifestyle

	return &domain.CompatibilityResult{
		Defined:            true,
		Mode:               domain.ScoringComposite,
		CompatibilityScore: roundScore(compatibility),
		SimilarityScore:    roundScore(similarity),
		Breakdown:          bd,
	}
}

// LegacyScore reproduces the original single-number formula. The similarity score
// and breakdown still come from the composite scorers so callers get one shape.
func LegacyScore(a, b *domain.PersonalityProfile) *domain.CompatibilityResult {
	lb := &domain.LegacyBreakdown{
		Personality:    TraitScore(a.Traits, b.Traits, domain.ScoringLegacy),
		BasicLifestyle: BasicLifestyleScore(a.LifestyleFlags, b.LifestyleFlags, domain.ScoringLegacy),
		Communication:  CommunicationScore(a.CommunicationStyle, b.CommunicationStyle, domain.ScoringLegacy),
		Location:       LocationScore(a.PreferredCity, b.PreferredCity),
	}

	total := 0.4*lb.Personality +
		0.3*lb.BasicLifestyle +
		0.2*lb.Communication +
		0.1*lb.Location

	res := Score(a, b)
	res.Mode = domain.ScoringLegacy
	res.CompatibilityScore = roundScore(total)
	res.Legacy = lb
	return res
}

// roundScore rounds halves to even.
func roundScore(v float64) int {
	return int(math.Max(0, math.Min(100, math.RoundToEven(v))))
}
