package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
	MatchStatusMutual   MatchStatus = "mutual"
)

// CanTransitionTo reports whether a match may move from s to next.
// Rejected and mutual are terminal.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	switch s {
	case MatchStatusPending:
		return next == MatchStatusAccepted || next == MatchStatusRejected || next == MatchStatusMutual
	case MatchStatusAccepted:
		return next == MatchStatusMutual
	}
	return false
}

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected, MatchStatusMutual:
		return true
	}
	return false
}

type Match struct {
	ID                 int         `json:"id" db:"id"`
	User1ID            int         `json:"user1_id" db:"user1_id"`
	User2ID            int         `json:"user2_id" db:"user2_id"`
	CompatibilityScore float64     `json:"compatibility_score" db:"compatibility_score"`
	Status             MatchStatus `json:"status" db:"status"`
	IsPrimaryForUser1  bool        `json:"is_primary_for_user1" db:"is_primary_for_user1"`
	IsPrimaryForUser2  bool        `json:"is_primary_for_user2" db:"is_primary_for_user2"`
	LivingSpaceID      *uuid.UUID  `json:"living_space_id,omitempty" db:"living_space_id"`
	Explanation        *string     `json:"explanation,omitempty" db:"match_explanation"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`
}

// Canonicalize orders a user pair so that the smaller id always comes first.
// Every match row is keyed on the canonical pair.
func Canonicalize(a, b int) (first, second int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) GetOtherUserID(userID int) (int, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return 0, false
}

func (m *Match) IsPrimaryFor(userID int) bool {
	switch userID {
	case m.User1ID:
		return m.IsPrimaryForUser1
	case m.User2ID:
		return m.IsPrimaryForUser2
	}
	return false
}

func (m *Match) HasLivingSpace() bool {
	return m.LivingSpaceID != nil
}
