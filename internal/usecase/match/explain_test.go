package match

import (
	"context"
	"errors"
	"testing"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExplain_StoresGeneratedText(t *testing.T) {
	store := memory.NewStore()
	explainer := &stubExplainer{text: "You both love quiet evenings."}
	uc := newUseCase(store, explainer)
	ctx := context.Background()
	m := createMatch(t, uc, store, 1, 2)

	text, err := uc.Explain(ctx, m.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "You both love quiet evenings.", text)

	again, err := uc.Explain(ctx, m.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, text, again)
	assert.Equal(t, 1, explainer.calls)
}

func TestExplain_FallsBackWhenGeneratorFails(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store, &stubExplainer{err: errors.New("quota exceeded")})
	m := createMatch(t, uc, store, 1, 2)

	text, err := uc.Explain(context.Background(), m.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "You are 81% compatible as flatmates, strongest on household basics. Talk about location before moving in.", text)
}

func TestExplain_WithoutProfiles(t *testing.T) {
	store := memory.NewStore()
	uc := NewMatchUseCase(store.Matches(), store.Interactions(), stubScorer{}, store.LivingSpaces(), nil, zap.NewNop())
	m := createMatch(t, uc, store, 1, 2)

	_, err := uc.Explain(context.Background(), m.ID, 1)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDescribe_NoWeakArea(t *testing.T) {
	res := &domain.CompatibilityResult{
		CompatibilityScore: 95,
		Breakdown:          domain.Breakdown{LifestyleDetail: 100, BasicLifestyle: 90, Personality: 95, Communication: 90, Location: 100},
	}
	assert.Equal(t, "You are 95% compatible as flatmates, strongest on day-to-day habits.", describe(res))
}
