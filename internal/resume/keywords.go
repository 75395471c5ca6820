// Package resume suggests keywords for a target career and checks an
// uploaded resume against them.
package resume

import (
	"strings"

	"github.com/yoockh/careercounsel/internal/nlp"
)

var suggested = map[string][]string{
	"Software Developer":           {"Python", "JavaScript", "API development", "Git", "CI/CD", "agile methodology", "full-stack", "problem-solving"},
	"Data Scientist":               {"Python", "R", "machine learning", "statistical analysis", "data visualization", "SQL", "big data", "predictive modeling"},
	"UX Designer":                  {"user research", "wireframing", "prototyping", "usability testing", "Figma", "Adobe XD", "user-centered design", "information architecture"},
	"Product Manager":              {"product strategy", "roadmapping", "user stories", "market research", "stakeholder management", "agile", "KPIs", "product lifecycle"},
	"Digital Marketing Specialist": {"SEO", "SEM", "content marketing", "social media", "Google Analytics", "email campaigns", "conversion optimization", "A/B testing"},
	"Business Analyst":             {"requirements gathering", "data analysis", "SQL", "process modeling", "stakeholder interviews", "documentation", "problem-solving", "JIRA"},
}

var generic = []string{"leadership", "communication", "teamwork", "problem-solving", "analytical thinking"}

// SuggestedKeywords returns the keywords worth featuring on a resume aimed
// at title. Unknown titles get a generic list.
func SuggestedKeywords(title string) []string {
	if kw, ok := suggested[strings.TrimSpace(title)]; ok {
		return append([]string{}, kw...)
	}
	return append([]string{}, generic...)
}

type Review struct {
	Target    string       `json:"target"`
	Present   []string     `json:"present"`
	Missing   []string     `json:"missing"`
	Interests nlp.Keywords `json:"interests"`
}

// ReviewText reports which suggested keywords for target appear in text
// (case-insensitive) and which interest keywords the text mentions.
func ReviewText(target, text string) Review {
	lower := strings.ToLower(text)
	rv := Review{
		Target:    target,
		Present:   []string{},
		Missing:   []string{},
		Interests: nlp.ExtractKeywords(text),
	}
	for _, kw := range SuggestedKeywords(target) {
		if containsWord(lower, strings.ToLower(kw)) {
			rv.Present = append(rv.Present, kw)
		} else {
			rv.Missing = append(rv.Missing, kw)
		}
	}
	return rv
}

// containsWord matches kw only at word boundaries so "R" does not match
// every r in the text.
func containsWord(text, kw string) bool {
	for i := 0; ; {
		j := strings.Index(text[i:], kw)
		if j < 0 {
			return false
		}
		start, end := i+j, i+j+len(kw)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		i = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
