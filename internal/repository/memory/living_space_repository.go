package memory

import (
	"context"

	"github.com/google/uuid"
)

type LivingSpaceRepository struct {
	s *Store
}

func (r *LivingSpaceRepository) GetOrCreateForMatch(_ context.Context, matchID int, name string, memberIDs []int) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	space, ok := r.s.spaces[matchID]
	if !ok {
		space = &livingSpace{id: uuid.New(), name: name, members: map[int]string{}}
		r.s.spaces[matchID] = space
	}
	for _, userID := range memberIDs {
		if _, exists := space.members[userID]; !exists {
			space.members[userID] = "admin"
		}
	}
	return space.id, nil
}

// SpaceCount reports how many spaces have been provisioned.
func (r *LivingSpaceRepository) SpaceCount() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.spaces)
}

// Members returns the role of each member of the space owned by matchID.
func (r *LivingSpaceRepository) Members(matchID int) map[int]string {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := map[int]string{}
	if space, ok := r.s.spaces[matchID]; ok {
		for id, role := range space.members {
			out[id] = role
		}
	}
	return out
}
