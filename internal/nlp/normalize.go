// Package nlp holds the rule-based text pipeline: normalization,
// tokenization, keyword extraction and intent detection. Everything here is
// pure and safe for concurrent use.
package nlp

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, drops punctuation and symbol runes and
// collapses whitespace runs into single spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace, removes stopwords and
// lemmatizes what is left.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		tokens = append(tokens, Lemmatize(f))
	}
	return tokens
}

// Bigrams joins each pair of adjacent tokens with a single space.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
