package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to MatchStatus
		want     bool
	}{
		{MatchStatusPending, MatchStatusAccepted, true},
		{MatchStatusPending, MatchStatusRejected, true},
		{MatchStatusPending, MatchStatusMutual, true},
		{MatchStatusAccepted, MatchStatusMutual, true},
		{MatchStatusAccepted, MatchStatusRejected, false},
		{MatchStatusAccepted, MatchStatusPending, false},
		{MatchStatusRejected, MatchStatusPending, false},
		{MatchStatusRejected, MatchStatusMutual, false},
		{MatchStatusMutual, MatchStatusRejected, false},
		{MatchStatusMutual, MatchStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanonicalize(t *testing.T) {
	a, b := Canonicalize(9, 4)
	assert.Equal(t, 4, a)
	assert.Equal(t, 9, b)

	a, b = Canonicalize(4, 9)
	assert.Equal(t, 4, a)
	assert.Equal(t, 9, b)
}

func TestMatch_Participants(t *testing.T) {
	m := &Match{User1ID: 3, User2ID: 8, IsPrimaryForUser2: true}

	other, ok := m.GetOtherUserID(3)
	assert.True(t, ok)
	assert.Equal(t, 8, other)

	_, ok = m.GetOtherUserID(5)
	assert.False(t, ok)

	assert.True(t, m.IsPrimaryFor(8))
	assert.False(t, m.IsPrimaryFor(3))
	assert.False(t, m.IsPrimaryFor(5))
	assert.False(t, m.HasLivingSpace())
}
