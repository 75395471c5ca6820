package nlp

import "strings"

type Intent string

const (
	IntentConfused           Intent = "confused_state"
	IntentGoalOriented       Intent = "goal_oriented"
	IntentDreamJob           Intent = "dream_job"
	IntentTechInterest       Intent = "tech_interest"
	IntentCreativeMind       Intent = "creative_mind"
	IntentBusinessInterest   Intent = "business_interest"
	IntentHealthcareInterest Intent = "healthcare_interest"
	IntentEducationInterest  Intent = "education_interest"
	IntentGeneral            Intent = "general"
)

var (
	confusionPhrases = []string{"confused", "not sure", "dont know", "uncertain", "help me", "lost", "guidance"}
	goalPhrases      = []string{"want to become", "goal", "plan", "roadmap", "steps", "how to", "achieve", "career path"}
	dreamPhrases     = []string{"dream job", "always wanted", "passion", "love to", "aspire", "ideal career"}
)

// categoryIntents follows the order of Categories.
var categoryIntents = map[Category]Intent{
	CategoryTech:       IntentTechInterest,
	CategoryCreative:   IntentCreativeMind,
	CategoryBusiness:   IntentBusinessInterest,
	CategoryHealthcare: IntentHealthcareInterest,
	CategoryEducation:  IntentEducationInterest,
}

// IntentForCategory maps an interest category to its intent label.
func IntentForCategory(cat Category) Intent {
	if in, ok := categoryIntents[cat]; ok {
		return in
	}
	return IntentGeneral
}

// DetectIntent classifies text by phrase priority (confusion, goal, dream)
// and falls back to the category with the strictly highest keyword count.
func DetectIntent(text string) Intent {
	lower := strings.ToLower(text)
	normalized := Normalize(text)

	switch {
	case containsAny(lower, normalized, confusionPhrases):
		return IntentConfused
	case containsAny(lower, normalized, goalPhrases):
		return IntentGoalOriented
	case containsAny(lower, normalized, dreamPhrases):
		return IntentDreamJob
	}

	kw := ExtractKeywords(text)
	best, bestCount := IntentGeneral, 0
	for _, cat := range Categories {
		if n := kw.Count(cat); n > bestCount {
			best, bestCount = categoryIntents[cat], n
		}
	}
	return best
}

func containsAny(lower, normalized string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) || strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
