// Package sentiment buckets user text into positive, negative or neutral
// and shapes replies to match.
package sentiment

import (
	"strings"
)

type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Parse maps a label to a Sentiment. Anything unknown is neutral.
func Parse(s string) Sentiment {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case Positive:
		return Positive
	case Negative:
		return Negative
	default:
		return Neutral
	}
}

const (
	emotionAdjustment = 0.2
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

var (
	positiveEmotions = []string{
		"happy", "excited", "passionate", "enthusiastic", "confident", "optimistic",
		"eager", "motivated", "inspired", "determined", "hopeful", "love", "enjoy",
		"interested", "curious", "fascinated", "thrilled", "delighted", "pleased",
	}
	negativeEmotions = []string{
		"confused", "uncertain", "worried", "anxious", "stressed", "overwhelmed",
		"frustrated", "disappointed", "discouraged", "unsure", "lost", "afraid",
		"scared", "concerned", "doubtful", "hesitant", "unhappy", "sad", "depressed",
	}
	neutralEmotions = []string{
		"thinking", "considering", "wondering", "pondering", "contemplating",
		"evaluating", "assessing", "analyzing", "exploring", "learning",
		"understanding", "seeking", "looking", "searching", "trying",
	}
)

// Score is the full result of one analysis.
type Score struct {
	Sentiment     Sentiment `json:"sentiment"`
	Polarity      float64   `json:"polarity"`
	PositiveWords int       `json:"positive_words"`
	NegativeWords int       `json:"negative_words"`
}

type Analyzer struct {
	scorer PolarityScorer
}

// NewAnalyzer uses the built-in lexicon when scorer is nil.
func NewAnalyzer(scorer PolarityScorer) *Analyzer {
	if scorer == nil {
		scorer = NewLexicon()
	}
	return &Analyzer{scorer: scorer}
}

func (a *Analyzer) Analyze(text string) Sentiment {
	return a.Score(text).Sentiment
}

// Score combines the scorer's polarity with emotion word counts. Empty
// text is neutral and never reaches the scorer.
func (a *Analyzer) Score(text string) Score {
	if strings.TrimSpace(text) == "" {
		return Score{Sentiment: Neutral}
	}
	polarity := a.scorer.Polarity(text)

	lower := strings.ToLower(text)
	pos := countPresent(lower, positiveEmotions)
	neg := countPresent(lower, negativeEmotions)
	switch {
	case pos > neg:
		polarity += emotionAdjustment
	case neg > pos:
		polarity -= emotionAdjustment
	}

	out := Score{Polarity: polarity, PositiveWords: pos, NegativeWords: neg}
	switch {
	case polarity > positiveThreshold:
		out.Sentiment = Positive
	case polarity < negativeThreshold:
		out.Sentiment = Negative
	default:
		out.Sentiment = Neutral
	}
	return out
}

// Indicators are the shares of positive, negative and neutral emotion words.
type Indicators struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

func EmotionIndicators(text string) Indicators {
	lower := strings.ToLower(text)
	pos := countPresent(lower, positiveEmotions)
	neg := countPresent(lower, negativeEmotions)
	neu := countPresent(lower, neutralEmotions)

	total := pos + neg + neu
	if total == 0 {
		return Indicators{Positive: 0.33, Negative: 0.33, Neutral: 0.34}
	}
	return Indicators{
		Positive: float64(pos) / float64(total),
		Negative: float64(neg) / float64(total),
		Neutral:  float64(neu) / float64(total),
	}
}

// countPresent counts list words that occur anywhere in lower, each at most once.
func countPresent(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}
