package gemini

import (
	"context"
	"testing"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_IncludesScores(t *testing.T) {
	prompt := buildPrompt(&domain.CompatibilityResult{
		Defined:            true,
		CompatibilityScore: 82,
		SimilarityScore:    75,
		Breakdown:          domain.Breakdown{LifestyleDetail: 91, Personality: 64},
	})

	assert.Contains(t, prompt, "82/100")
	assert.Contains(t, prompt, "similarity: 75/100")
	assert.Contains(t, prompt, "daily habits 91")
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")
	assert.Error(t, err)
}
