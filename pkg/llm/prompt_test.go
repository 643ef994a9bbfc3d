package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"outreach/pkg/domain"
	"outreach/pkg/llm"
	"outreach/pkg/serrors"
)

func TestDescriptionInput_WithDefaults(t *testing.T) {
	in := llm.DescriptionInput{}.WithDefaults()
	require.Equal(t, llm.DefaultWordLimit, in.WordLimit)
	require.Equal(t, llm.DefaultTone, in.Tone)
	require.Equal(t, llm.DefaultEmotion, in.Emotion)

	custom := llm.DescriptionInput{WordLimit: 50, Tone: "playful", Emotion: "urgency"}.WithDefaults()
	require.Equal(t, llm.DescriptionInput{WordLimit: 50, Tone: "playful", Emotion: "urgency"}, custom)
}

func TestDescriptionPrompt(t *testing.T) {
	c := &domain.Campaign{
		Title:       "Spring sale",
		Description: domain.Description{Original: "20% off all bikes"},
		Onboarding: domain.Onboarding{
			BusinessType: "bike shop",
			BrandStyle:   []string{"bold", "casual"},
		},
	}

	p := llm.DescriptionPrompt(c, llm.DescriptionInput{WordLimit: 80})
	require.Contains(t, p, "- Title: Spring sale")
	require.Contains(t, p, "- Draft description: 20% off all bikes")
	require.Contains(t, p, "- Business type: bike shop")
	require.Contains(t, p, "- Brand style: bold, casual")
	require.Contains(t, p, "at most 80 words")
	require.Contains(t, p, llm.DefaultTone)
	require.NotContains(t, p, "Target audience")
}

func TestUnavailable(t *testing.T) {
	_, err := llm.Unavailable{}.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
