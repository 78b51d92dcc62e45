package memory

import (
	"context"
	"sort"

	"github.com/gdugdh24/roomies-backend/internal/domain"
)

type InteractionRepository struct {
	s *Store
}

func (r *InteractionRepository) CreateIfAbsent(_ context.Context, interaction *domain.Interaction) (*domain.Interaction, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{interaction.ActorID, interaction.TargetID}
	if existing, ok := r.s.interactions[key]; ok {
		out := *existing
		return &out, false, nil
	}

	r.s.nextInteractionID++
	stored := *interaction
	stored.ID = r.s.nextInteractionID
	stored.CreatedAt = r.s.now()
	r.s.interactions[key] = &stored

	out := stored
	return &out, true, nil
}

func (r *InteractionRepository) GetByUsers(_ context.Context, actorID, targetID int) (*domain.Interaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.interactions[pairKey{actorID, targetID}]
	if !ok {
		return nil, domain.ErrInteractionNotFound
	}
	out := *existing
	return &out, nil
}

func (r *InteractionRepository) HasLiked(_ context.Context, actorID, targetID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.interactions[pairKey{actorID, targetID}]
	return ok && existing.Type.IsLike(), nil
}

func (r *InteractionRepository) GetPendingLikes(_ context.Context, targetID int) ([]*domain.Interaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	likes := []*domain.Interaction{}
	for key, i := range r.s.interactions {
		if key.b != targetID || !i.Type.IsLike() {
			continue
		}
		if _, answered := r.s.interactions[pairKey{targetID, key.a}]; answered {
			continue
		}
		out := *i
		likes = append(likes, &out)
	}
	sort.Slice(likes, func(a, b int) bool {
		if !likes[a].CreatedAt.Equal(likes[b].CreatedAt) {
			return likes[a].CreatedAt.After(likes[b].CreatedAt)
		}
		return likes[a].ID > likes[b].ID
	})
	return likes, nil
}

func (r *InteractionRepository) GetInteractedUserIDs(_ context.Context, actorID int) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := []int{}
	for key := range r.s.interactions {
		if key.a == actorID {
			ids = append(ids, key.b)
		}
	}
	sort.Ints(ids)
	return ids, nil
}
