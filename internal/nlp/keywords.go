package nlp

// Keywords maps each category, plus CategoryAll, to the terms matched in a
// text. Lists keep repeated mentions and are never nil.
type Keywords map[Category][]string

// Count is the number of matches recorded for cat.
func (k Keywords) Count(cat Category) int { return len(k[cat]) }

// All returns the concatenated matches in category order.
func (k Keywords) All() []string { return k[CategoryAll] }

// Empty reports whether nothing matched.
func (k Keywords) Empty() bool { return len(k[CategoryAll]) == 0 }

// ExtractKeywords tests every unigram and adjacent bigram of text against
// the category vocabularies.
func ExtractKeywords(text string) Keywords {
	tokens := Tokenize(Normalize(text))
	terms := append(append([]string(nil), tokens...), Bigrams(tokens)...)

	out := make(Keywords, len(Categories)+1)
	all := []string{}
	for _, cat := range Categories {
		matched := []string{}
		for _, term := range terms {
			if InVocabulary(cat, term) {
				matched = append(matched, term)
			}
		}
		out[cat] = matched
		all = append(all, matched...)
	}
	out[CategoryAll] = all
	return out
}
