package nlp

import "strings"

var irregularNouns = map[string]string{
	"children":  "child",
	"people":    "person",
	"men":       "man",
	"women":     "woman",
	"feet":      "foot",
	"teeth":     "tooth",
	"mice":      "mouse",
	"geese":     "goose",
	"criteria":  "criterion",
	"phenomena": "phenomenon",
}

// keepSuffixes mark words that look plural but are not.
var keepSuffixes = []string{"ss", "us", "is", "ics", "ous"}

// Lemmatize reduces a lowercase word to a noun lemma. Rules are applied
// until the word stops changing, so Lemmatize(Lemmatize(w)) == Lemmatize(w).
func Lemmatize(word string) string {
	for i := 0; i < 8; i++ {
		next := lemmatizeOnce(word)
		if next == word {
			return word
		}
		word = next
	}
	return word
}

func lemmatizeOnce(w string) string {
	if base, ok := irregularNouns[w]; ok {
		return base
	}
	if len(w) <= 3 || !strings.HasSuffix(w, "s") {
		return w
	}
	for _, suf := range keepSuffixes {
		if strings.HasSuffix(w, suf) {
			return w
		}
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"),
		strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	default:
		return w[:len(w)-1]
	}
}
