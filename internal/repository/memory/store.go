// Package memory keeps every repository in process memory. It backs
// STORAGE_TYPE=memory and the use case tests.
package memory

import (
	"sync"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/google/uuid"
)

type pairKey struct{ a, b int }

type livingSpace struct {
	id      uuid.UUID
	name    string
	members map[int]string
}

// Store is the shared state behind the memory repositories. A single lock
// covers all tables so multi-table operations stay atomic.
type Store struct {
	mu sync.Mutex

	profiles     map[int]*domain.PersonalityProfile
	interactions map[pairKey]*domain.Interaction
	matches      map[int]*domain.Match
	matchByPair  map[pairKey]int
	spaces       map[int]*livingSpace

	nextInteractionID int
	nextMatchID       int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		profiles:     make(map[int]*domain.PersonalityProfile),
		interactions: make(map[pairKey]*domain.Interaction),
		matches:      make(map[int]*domain.Match),
		matchByPair:  make(map[pairKey]int),
		spaces:       make(map[int]*livingSpace),
		now:          time.Now,
	}
}

func (s *Store) Profiles() *ProfileRepository         { return &ProfileRepository{s: s} }
func (s *Store) Interactions() *InteractionRepository { return &InteractionRepository{s: s} }
func (s *Store) Matches() *MatchRepository            { return &MatchRepository{s: s} }
func (s *Store) LivingSpaces() *LivingSpaceRepository { return &LivingSpaceRepository{s: s} }
