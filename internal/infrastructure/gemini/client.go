package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const modelName = "gemini-1.5-pro"

var ErrEmptyResponse = errors.New("gemini returned no content")

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(200)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// ExplainMatch asks the model for a short note on why two flatmates fit.
func (c *GeminiClient) ExplainMatch(ctx context.Context, result *domain.CompatibilityResult) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(result)))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func buildPrompt(result *domain.CompatibilityResult) string {
	bd := result.Breakdown
	return fmt.Sprintf(`
		Two people are considering sharing a flat.
		Overall compatibility: %d/100, similarity: %d/100.
		Component scores (0-100): daily habits %.0f, basic lifestyle %.0f,
		personality %.0f, communication %.0f, location %.0f.

		Task: Write a short, friendly explanation (1-2 sentences) of how they would get
		along as flatmates. Mention their strongest area and, if any score is below 60,
		one thing to talk about before moving in.
		Output: Just the explanation text.
	`, result.CompatibilityScore, result.SimilarityScore,
		bd.LifestyleDetail, bd.BasicLifestyle, bd.Personality, bd.Communication, bd.Location)
}
