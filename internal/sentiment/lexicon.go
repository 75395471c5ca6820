package sentiment

import (
	"strings"

	"github.com/yoockh/careercounsel/internal/nlp"
)

// PolarityScorer returns a polarity in [-1, 1] for free text.
type PolarityScorer interface {
	Polarity(text string) float64
}

// Lexicon scores text by averaging word valences. A negator within the
// three preceding words flips and damps a valence, and an intensifier right
// before a word amplifies it.
type Lexicon struct {
	valence      map[string]float64
	negators     map[string]struct{}
	intensifiers map[string]float64
}

func NewLexicon() *Lexicon {
	return &Lexicon{
		valence:      defaultValence,
		negators:     defaultNegators,
		intensifiers: defaultIntensifiers,
	}
}

func (l *Lexicon) Polarity(text string) float64 {
	words := strings.Fields(nlp.Normalize(text))
	var sum float64
	n := 0
	for i, w := range words {
		v, ok := l.valence[w]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := l.intensifiers[words[i-1]]; ok {
				v *= m
			}
		}
		for j := i - 1; j >= 0 && j >= i-3; j-- {
			if _, ok := l.negators[words[j]]; ok {
				v *= -0.5
				break
			}
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return clamp(sum / float64(n))
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

var defaultNegators = setOf("not", "no", "never", "dont", "doesnt", "didnt", "cant", "cannot", "wont", "isnt", "arent", "wasnt", "nothing", "hardly")

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"so":         1.2,
	"super":      1.3,
	"incredibly": 1.5,
	"truly":      1.2,
	"totally":    1.3,
}

var defaultValence = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "awesome": 1.0,
	"wonderful": 1.0, "fantastic": 0.4, "best": 1.0, "better": 0.5, "nice": 0.6,
	"happy": 0.8, "glad": 0.5, "excited": 0.4, "exciting": 0.3, "passionate": 0.5,
	"enthusiastic": 0.7, "confident": 0.5, "optimistic": 0.6, "eager": 0.5,
	"motivated": 0.5, "inspired": 0.5, "inspiring": 0.6, "determined": 0.3,
	"hopeful": 0.5, "love": 0.5, "loved": 0.7, "enjoy": 0.4, "enjoyed": 0.4,
	"like": 0.2, "interested": 0.25, "interesting": 0.5, "curious": 0.2,
	"fascinated": 0.6, "fascinating": 0.6, "thrilled": 0.8, "delighted": 0.8,
	"pleased": 0.5, "fun": 0.3, "perfect": 1.0, "success": 0.5, "successful": 0.75,
	"proud": 0.8, "grateful": 0.6, "thanks": 0.2, "thank": 0.2, "helpful": 0.4,
	"favorite": 0.5, "ready": 0.2, "positive": 0.2, "rewarding": 0.6,
	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"worse": -0.4, "poor": -0.4, "hate": -0.8, "hated": -0.9, "dislike": -0.5,
	"sad": -0.5, "unhappy": -0.6, "depressed": -0.7, "confused": -0.4,
	"confusing": -0.4, "uncertain": -0.3, "worried": -0.5, "anxious": -0.4,
	"stressed": -0.5, "stressful": -0.5, "overwhelmed": -0.5, "overwhelming": -0.4,
	"frustrated": -0.6, "frustrating": -0.6, "disappointed": -0.75,
	"disappointing": -0.6, "discouraged": -0.5, "unsure": -0.3, "lost": -0.3,
	"afraid": -0.6, "scared": -0.5, "concerned": -0.3, "doubtful": -0.3,
	"hesitant": -0.2, "boring": -1.0, "bored": -0.5, "hard": -0.3,
	"difficult": -0.5, "stuck": -0.4, "hopeless": -0.8, "tired": -0.4,
	"fail": -0.5, "failed": -0.5, "failure": -0.6, "wrong": -0.5, "angry": -0.6,
	"useless": -0.5, "negative": -0.3,
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
