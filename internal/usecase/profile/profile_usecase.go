package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/roomies-backend/internal/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository"
)

// Invalidator drops derived data that depends on a user's profile.
type Invalidator interface {
	Invalidate(ctx context.Context, userID int)
}

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	invalidator Invalidator
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, invalidator Invalidator) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		invalidator: invalidator,
	}
}

// PersonalityRequest carries the survey outcome. Scores outside 0-100 are
// clamped rather than rejected.
type PersonalityRequest struct {
	Openness           *int                      `json:"openness"`
	Conscientiousness  *int                      `json:"conscientiousness"`
	Extraversion       *int                      `json:"extraversion"`
	Agreeableness      *int                      `json:"agreeableness"`
	Neuroticism        *int                      `json:"neuroticism"`
	CleanlinessLevel   *int                      `json:"cleanliness_level"`
	SocialLevel        *int                      `json:"social_level"`
	QuietHours         bool                      `json:"quiet_hours"`
	PetsAllowed        bool                      `json:"pets_allowed"`
	SmokingAllowed     bool                      `json:"smoking_allowed"`
	CommunicationStyle domain.CommunicationStyle `json:"communication_style"`
	LifestyleAnswers   map[string]string         `json:"lifestyle_answers"`
	PreferredCity      *string                   `json:"preferred_city"`
}

func (uc *ProfileUseCase) UpsertPersonality(ctx context.Context, userID int, req *PersonalityRequest) (*domain.PersonalityProfile, error) {
	style := req.CommunicationStyle
	if style == "" {
		style = domain.CommunicationDiplomatic
	}
	if !style.IsValid() {
		return nil, domain.ErrInvalidCommunicationStyle
	}

	profile := &domain.PersonalityProfile{
		UserID: userID,
		Traits: domain.Traits{
			Openness:          req.Openness,
			Conscientiousness: req.Conscientiousness,
			Extraversion:      req.Extraversion,
			Agreeableness:     req.Agreeableness,
			Neuroticism:       req.Neuroticism,
		},
		LifestyleFlags: domain.LifestyleFlags{
			CleanlinessLevel: valueOr(req.CleanlinessLevel, 50),
			SocialLevel:      valueOr(req.SocialLevel, 50),
			QuietHours:       req.QuietHours,
			PetsAllowed:      req.PetsAllowed,
			SmokingAllowed:   req.SmokingAllowed,
		},
		CommunicationStyle: style,
		LifestyleAnswers:   normalizeAnswers(req.LifestyleAnswers),
		PreferredCity:      normalizeCity(req.PreferredCity),
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save personality profile: %w", err)
	}
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx, userID)
	}
	return profile, nil
}

func (uc *ProfileUseCase) GetPersonality(ctx context.Context, userID int) (*domain.PersonalityProfile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

var surveyKeys = func() map[string]bool {
	keys := map[string]bool{}
	for _, k := range compatibility.AttributeKeys() {
		keys[k] = true
	}
	return keys
}()

// normalizeAnswers lowercases answers and drops attributes the survey does not ask.
func normalizeAnswers(in map[string]string) domain.LifestyleAnswers {
	out := make(domain.LifestyleAnswers, len(in))
	for k, v := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || !surveyKeys[k] {
			continue
		}
		out[k] = v
	}
	return out
}

func normalizeCity(city *string) *string {
	if city == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*city)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
