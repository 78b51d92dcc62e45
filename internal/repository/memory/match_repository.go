package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/google/uuid"
)

type MatchRepository struct {
	s *Store
}

func (r *MatchRepository) GetOrCreate(_ context.Context, match *domain.Match) (*domain.Match, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user1ID, user2ID := domain.Canonicalize(match.User1ID, match.User2ID)
	key := pairKey{user1ID, user2ID}
	if id, ok := r.s.matchByPair[key]; ok {
		return copyMatch(r.s.matches[id]), false, nil
	}

	r.s.nextMatchID++
	now := r.s.now()
	stored := &domain.Match{
		ID:                 r.s.nextMatchID,
		User1ID:            user1ID,
		User2ID:            user2ID,
		CompatibilityScore: match.CompatibilityScore,
		Status:             match.Status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if stored.Status == "" {
		stored.Status = domain.MatchStatusPending
	}
	r.s.matches[stored.ID] = stored
	r.s.matchByPair[key] = stored.ID
	return copyMatch(stored), true, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return copyMatch(m), nil
}

func (r *MatchRepository) GetByUsers(_ context.Context, user1ID, user2ID int) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user1ID, user2ID = domain.Canonicalize(user1ID, user2ID)
	id, ok := r.s.matchByPair[pairKey{user1ID, user2ID}]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return copyMatch(r.s.matches[id]), nil
}

func (r *MatchRepository) GetUserMatches(_ context.Context, userID int, limit, offset int) ([]*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := []*domain.Match{}
	for _, m := range r.s.matches {
		if m.HasUser(userID) {
			all = append(all, copyMatch(m))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		pi, pj := all[i].IsPrimaryFor(userID), all[j].IsPrimaryFor(userID)
		if pi != pj {
			return pi
		}
		if all[i].CompatibilityScore != all[j].CompatibilityScore {
			return all[i].CompatibilityScore > all[j].CompatibilityScore
		}
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []*domain.Match{}, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, id int, from, to domain.MatchStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok {
		return domain.ErrMatchNotFound
	}
	if m.Status != from {
		return domain.ErrInvalidStatusTransition
	}
	m.Status = to
	m.UpdatedAt = r.s.now()
	return nil
}

func (r *MatchRepository) SetPrimary(_ context.Context, matchID, userID int, isPrimary bool) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	target, ok := r.s.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	if !target.HasUser(userID) {
		return nil, domain.ErrNotParticipant
	}

	now := r.s.now()
	if isPrimary {
		for id, m := range r.s.matches {
			if id == matchID || !m.IsPrimaryFor(userID) {
				continue
			}
			setPrimaryFlag(m, userID, false)
			m.UpdatedAt = now
		}
	}
	setPrimaryFlag(target, userID, isPrimary)
	target.UpdatedAt = now
	return copyMatch(target), nil
}

func (r *MatchRepository) AttachLivingSpace(_ context.Context, matchID int, spaceID uuid.UUID) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	if m.LivingSpaceID == nil {
		id := spaceID
		m.LivingSpaceID = &id
		m.UpdatedAt = r.s.now()
	}
	return copyMatch(m), nil
}

func (r *MatchRepository) DeleteWithInteractions(_ context.Context, matchID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	if m.HasLivingSpace() {
		return domain.ErrLivingSpaceAttached
	}

	delete(r.s.interactions, pairKey{m.User1ID, m.User2ID})
	delete(r.s.interactions, pairKey{m.User2ID, m.User1ID})
	delete(r.s.matchByPair, pairKey{m.User1ID, m.User2ID})
	delete(r.s.matches, matchID)
	return nil
}

func (r *MatchRepository) UpdateExplanation(_ context.Context, matchID int, explanation string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	m.Explanation = &explanation
	m.UpdatedAt = r.s.now()
	return nil
}

func setPrimaryFlag(m *domain.Match, userID int, value bool) {
	if m.User1ID == userID {
		m.IsPrimaryForUser1 = value
	} else {
		m.IsPrimaryForUser2 = value
	}
}

func copyMatch(m *domain.Match) *domain.Match {
	out := *m
	if m.LivingSpaceID != nil {
		id := *m.LivingSpaceID
		out.LivingSpaceID = &id
	}
	if m.Explanation != nil {
		e := *m.Explanation
		out.Explanation = &e
	}
	return &out
}
