package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

type ProfileRepository struct {
	s *Store
}

func (r *ProfileRepository) GetByUserID(_ context.Context, userID int) (*domain.PersonalityProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return copyProfile(p), nil
}

func (r *ProfileRepository) Upsert(_ context.Context, profile *domain.PersonalityProfile) error {
	profile.Clamp()
	if profile.LifestyleAnswers == nil {
		profile.LifestyleAnswers = domain.LifestyleAnswers{}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if existing, ok := r.s.profiles[profile.UserID]; ok {
		profile.CompletedAt = existing.CompletedAt
	} else {
		profile.CompletedAt = now
	}
	profile.UpdatedAt = now
	r.s.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

func (r *ProfileRepository) ListUserIDs(_ context.Context, exclude []int, limit int) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	skip := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	candidates := make([]*domain.PersonalityProfile, 0, len(r.s.profiles))
	for id, p := range r.s.profiles {
		if !skip[id] {
			candidates = append(candidates, p)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].UpdatedAt.Equal(candidates[j].UpdatedAt) {
			return candidates[i].UpdatedAt.After(candidates[j].UpdatedAt)
		}
		return candidates[i].UserID < candidates[j].UserID
	})

	ids := []int{}
	for _, p := range candidates {
		if limit > 0 && len(ids) == limit {
			break
		}
		ids = append(ids, p.UserID)
	}
	return ids, nil
}

func copyProfile(p *domain.PersonalityProfile) *domain.PersonalityProfile {
	out := *p
	cp := func(v *int) *int {
		if v == nil {
			return nil
		}
		x := *v
		return &x
	}
	out.Openness = cp(p.Openness)
	out.Conscientiousness = cp(p.Conscientiousness)
	out.Extraversion = cp(p.Extraversion)
	out.Agreeableness = cp(p.Agreeableness)
	out.Neuroticism = cp(p.Neuroticism)
	if p.PreferredCity != nil {
		city := *p.PreferredCity
		out.PreferredCity = &city
	}
	out.LifestyleAnswers = make(domain.LifestyleAnswers, len(p.LifestyleAnswers))
	for k, v := range p.LifestyleAnswers {
		out.LifestyleAnswers[k] = v
	}
	return &out
}
