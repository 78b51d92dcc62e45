package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalityProfile_Clamp(t *testing.T) {
	high, low := 140, -3
	p := &PersonalityProfile{
		Traits:         Traits{Openness: &high, Neuroticism: &low},
		LifestyleFlags: LifestyleFlags{CleanlinessLevel: 101, SocialLevel: 55},
	}

	p.Clamp()

	assert.Equal(t, 100, *p.Openness)
	assert.Equal(t, 0, *p.Neuroticism)
	assert.Nil(t, p.Extraversion)
	assert.Equal(t, 100, p.CleanlinessLevel)
	assert.Equal(t, 55, p.SocialLevel)
}

func TestLifestyleAnswers_Value(t *testing.T) {
	v, err := LifestyleAnswers(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	v, err = LifestyleAnswers{"allergies": "none"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"allergies":"none"}`, string(v.([]byte)))
}

func TestLifestyleAnswers_Scan(t *testing.T) {
	var a LifestyleAnswers

	require.NoError(t, a.Scan([]byte(`{"early_riser":"night_owl"}`)))
	assert.Equal(t, LifestyleAnswers{"early_riser": "night_owl"}, a)

	require.NoError(t, a.Scan(`{"pet_situation":"no_pets"}`))
	assert.Equal(t, LifestyleAnswers{"pet_situation": "no_pets"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)

	assert.Error(t, a.Scan(42))
	assert.Error(t, a.Scan([]byte("not json")))
}

func TestInteractionType(t *testing.T) {
	assert.True(t, InteractionSuperLike.IsLike())
	assert.True(t, InteractionLike.IsLike())
	assert.False(t, InteractionPass.IsLike())
	assert.False(t, InteractionBlock.IsLike())
	assert.False(t, InteractionType("wink").IsValid())
}
