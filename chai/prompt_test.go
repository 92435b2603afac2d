package chai

import (
	"strings"
	"testing"

	"github.com/weiwang118/Wei-s-chatbot/domain"
)

func TestPersonalityPrompt(t *testing.T) {
	prompt := PersonalityPrompt(domain.PersonalityFriendly, nil)
	if !strings.HasPrefix(prompt, safetyPrompt) {
		t.Fatalf("prompt missing safety preamble")
	}
	if !strings.Contains(prompt, "warm, outgoing person") {
		t.Fatalf("prompt missing friendly description: %q", prompt)
	}
}

func TestPersonalityPromptTraits(t *testing.T) {
	prompt := PersonalityPrompt(domain.PersonalityAnalytical, []string{"loves hiking", "drinks too much coffee"})
	if !strings.Contains(prompt, "Additional traits: loves hiking, drinks too much coffee") {
		t.Fatalf("prompt missing traits: %q", prompt)
	}
}

func TestPersonalityPromptUnknownTag(t *testing.T) {
	prompt := PersonalityPrompt(domain.PersonalityType("mystery"), nil)
	if !strings.Contains(prompt, fallbackPrompt) {
		t.Fatalf("expected fallback prompt, got %q", prompt)
	}
}

func TestPersonalityPromptAllKnownTags(t *testing.T) {
	tags := []domain.PersonalityType{
		domain.PersonalityFriendly,
		domain.PersonalityProfessional,
		domain.PersonalityCreative,
		domain.PersonalityAnalytical,
		domain.PersonalityEmpathetic,
		domain.PersonalityHumorous,
		domain.PersonalityAdventurous,
		domain.PersonalityIntellectual,
	}
	for _, tag := range tags {
		if strings.Contains(PersonalityPrompt(tag, nil), fallbackPrompt) {
			t.Fatalf("tag %q fell back to the generic prompt", tag)
		}
	}
}
