package sentiment

import "strings"

type Tone struct {
	Tone               string `json:"tone"`
	EncouragementLevel string `json:"encouragement_level"`
	DetailLevel        string `json:"detail_level"`
	Formality          string `json:"formality"`
	EmojiUse           string `json:"emoji_use"`
}

var tones = map[Sentiment]Tone{
	Positive: {Tone: "enthusiastic", EncouragementLevel: "moderate", DetailLevel: "high", Formality: "conversational", EmojiUse: "moderate"},
	Negative: {Tone: "supportive", EncouragementLevel: "high", DetailLevel: "moderate", Formality: "warm", EmojiUse: "minimal"},
	Neutral:  {Tone: "informative", EncouragementLevel: "moderate", DetailLevel: "high", Formality: "balanced", EmojiUse: "minimal"},
}

// ResponseTone returns the tone profile for s; unknown values get the neutral one.
func ResponseTone(s Sentiment) Tone {
	if t, ok := tones[s]; ok {
		return t
	}
	return tones[Neutral]
}

var (
	positiveOpeners = []string{
		"That's great enthusiasm! ",
		"I love your positive energy! ",
		"Your passion is inspiring! ",
	}
	supportOpeners = []string{
		"I understand this can feel overwhelming. ",
		"It's completely normal to feel uncertain. ",
		"Many people share these concerns, and that's okay. ",
	}
	negativeOpeners = []string{
		"I'm here to help you navigate this. ",
		"Let's break this down into manageable steps. ",
		"We'll figure this out together. ",
	}
)

const negativeClosing = " Remember, every career journey has its challenges, but with persistence and the right guidance, you'll find your path."

// AdjustResponse prefixes and closes a reply to suit the user's mood.
// Each addition is skipped when already present, so applying it twice is a
// no-op. Neutral replies are returned unchanged.
func AdjustResponse(base string, s Sentiment) string {
	switch s {
	case Positive:
		if !containsAnyPhrase(base, positiveOpeners) {
			base = positiveOpeners[0] + base
		}
		if !strings.HasSuffix(base, "!") && !strings.HasSuffix(base, "?") {
			base += "!"
		}
	case Negative:
		if !containsAnyPhrase(base, supportOpeners) && !containsAnyPhrase(base, negativeOpeners) {
			base = supportOpeners[0] + negativeOpeners[0] + base
		}
		if strings.Contains(base, negativeClosing) {
			return base
		}
		if !strings.HasSuffix(base, "!") && !strings.HasSuffix(base, "?") && !strings.HasSuffix(base, ".") {
			base += "."
		}
		base += negativeClosing
	}
	return base
}

func containsAnyPhrase(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
