package profile

import (
	"context"
	"testing"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct{ users []int }

func (r *recordingInvalidator) Invalidate(_ context.Context, userID int) {
	r.users = append(r.users, userID)
}

func intPtr(v int) *int { return &v }

func TestUpsertPersonality_ClampsAndNormalises(t *testing.T) {
	store := memory.NewStore()
	inv := &recordingInvalidator{}
	uc := NewProfileUseCase(store.Profiles(), inv)
	city := "  Berlin "

	_, err := uc.UpsertPersonality(context.Background(), 7, &PersonalityRequest{
		Openness:           intPtr(140),
		Neuroticism:        intPtr(-5),
		CleanlinessLevel:   intPtr(101),
		CommunicationStyle: domain.CommunicationFormal,
		LifestyleAnswers:   map[string]string{" Noise_Tolerance ": " High", "allergies": " ", "favourite_colour": "blue"},
		PreferredCity:      &city,
	})
	require.NoError(t, err)

	got, err := uc.GetPersonality(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 100, *got.Openness)
	assert.Equal(t, 0, *got.Neuroticism)
	assert.Nil(t, got.Extraversion)
	assert.Equal(t, 100, got.CleanlinessLevel)
	assert.Equal(t, 50, got.SocialLevel)
	assert.Equal(t, domain.LifestyleAnswers{"noise_tolerance": "high"}, got.LifestyleAnswers)
	require.NotNil(t, got.PreferredCity)
	assert.Equal(t, "Berlin", *got.PreferredCity)
	assert.Equal(t, []int{7}, inv.users)
}

func TestUpsertPersonality_DefaultsStyle(t *testing.T) {
	uc := NewProfileUseCase(memory.NewStore().Profiles(), nil)

	p, err := uc.UpsertPersonality(context.Background(), 1, &PersonalityRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.CommunicationDiplomatic, p.CommunicationStyle)
}

func TestUpsertPersonality_InvalidStyle(t *testing.T) {
	uc := NewProfileUseCase(memory.NewStore().Profiles(), nil)

	_, err := uc.UpsertPersonality(context.Background(), 1, &PersonalityRequest{CommunicationStyle: "telepathic"})
	assert.ErrorIs(t, err, domain.ErrInvalidCommunicationStyle)
}

func TestGetPersonality_NotFound(t *testing.T) {
	uc := NewProfileUseCase(memory.NewStore().Profiles(), nil)

	_, err := uc.GetPersonality(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
