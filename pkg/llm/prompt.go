package llm

import (
	"fmt"
	"strings"

	"outreach/pkg/domain"
)

const (
	DefaultWordLimit = 200
	DefaultTone      = "professional and friendly"
	DefaultEmotion   = "trust and excitement"
)

// DescriptionInput tunes the generated description. Zero values fall back
// to the defaults above.
type DescriptionInput struct {
	WordLimit int    `json:"wordLimit"`
	Tone      string `json:"tone"`
	Emotion   string `json:"emotion"`
}

// WithDefaults fills unset fields.
func (in DescriptionInput) WithDefaults() DescriptionInput {
	if in.WordLimit <= 0 {
		in.WordLimit = DefaultWordLimit
	}
	if strings.TrimSpace(in.Tone) == "" {
		in.Tone = DefaultTone
	}
	if strings.TrimSpace(in.Emotion) == "" {
		in.Emotion = DefaultEmotion
	}

	return in
}

func writeField(b *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

// DescriptionPrompt renders the prompt asking for a marketing description
// of c, grounded on the business context collected at onboarding.
func DescriptionPrompt(c *domain.Campaign, in DescriptionInput) string {
	in = in.WithDefaults()

	var b strings.Builder
	b.WriteString("You write marketing copy for outreach campaigns sent over chat, voice notes and calls.\n\n")
	b.WriteString("Business context:\n")
	writeField(&b, "Business type", c.Onboarding.BusinessType)
	writeField(&b, "Target audience", c.Onboarding.TargetAudience)
	writeField(&b, "Brand style", strings.Join(c.Onboarding.BrandStyle, ", "))
	writeField(&b, "Response preference", c.Onboarding.ResponsePreference)
	writeField(&b, "Language", c.Onboarding.Language)
	writeField(&b, "Region", c.Onboarding.Region)
	writeField(&b, "Compliance notes", c.Onboarding.ComplianceNotes)

	b.WriteString("\nCampaign:\n")
	writeField(&b, "Title", c.Title)
	writeField(&b, "Draft description", c.Description.Original)
	writeField(&b, "Tone of voice", c.ToneOfVoice)

	fmt.Fprintf(&b, "\nWrite a campaign description of at most %d words. "+
		"Use a %s tone and make the reader feel %s. "+
		"Answer with the description text only, without a title, quotes or markdown.\n",
		in.WordLimit, in.Tone, in.Emotion)

	return b.String()
}
