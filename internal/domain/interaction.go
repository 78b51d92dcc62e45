package domain

import "time"

type InteractionType string

const (
	InteractionLike      InteractionType = "like"
	InteractionPass      InteractionType = "pass"
	InteractionSuperLike InteractionType = "super_like"
	InteractionBlock     InteractionType = "block"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionLike, InteractionPass, InteractionSuperLike, InteractionBlock:
		return true
	}
	return false
}

// IsLike reports whether the interaction counts towards a mutual like.
func (t InteractionType) IsLike() bool {
	return t == InteractionLike || t == InteractionSuperLike
}

// Interaction is a directional edge from ActorID to TargetID. At most one exists
// per ordered pair and it is never updated.
type Interaction struct {
	ID        int             `json:"id" db:"id"`
	ActorID   int             `json:"actor_id" db:"actor_id"`
	TargetID  int             `json:"target_id" db:"target_id"`
	Type      InteractionType `json:"type" db:"interaction_type"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
