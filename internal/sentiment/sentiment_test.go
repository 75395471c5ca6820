package sentiment

import (
	"math"
	"testing"
)

type stubScorer struct {
	value float64
	calls int
}

func (s *stubScorer) Polarity(string) float64 {
	s.calls++
	return s.value
}

func TestAnalyzeEmptySkipsScorer(t *testing.T) {
	stub := &stubScorer{value: 0.9}
	a := NewAnalyzer(stub)
	if got := a.Analyze("   "); got != Neutral {
		t.Fatalf("expected neutral, got %s", got)
	}
	if stub.calls != 0 {
		t.Fatalf("scorer should not be called for empty text, calls=%d", stub.calls)
	}
}

func TestAnalyzeBuckets(t *testing.T) {
	cases := []struct {
		name     string
		polarity float64
		text     string
		want     Sentiment
	}{
		{"emotion words lift neutral", 0, "I am so excited", Positive},
		{"emotion words sink neutral", 0, "I feel lost and confused", Negative},
		{"plain neutral", 0.05, "tell me about jobs", Neutral},
		{"threshold is exclusive", 0.1, "tell me about jobs", Neutral},
		{"scorer positive", 0.15, "tell me about jobs", Positive},
		{"scorer negative", -0.15, "tell me about jobs", Negative},
		{"balanced emotions", 0, "happy but worried", Neutral},
		{"emotion words outweigh scorer", 0.25, "I feel lost and confused", Neutral},
	}
	for _, tc := range cases {
		a := NewAnalyzer(&stubScorer{value: tc.polarity})
		if got := a.Analyze(tc.text); got != tc.want {
			t.Fatalf("%s: Analyze(%q)=%s want %s", tc.name, tc.text, got, tc.want)
		}
	}
}

func TestScoreReportsAdjustedPolarity(t *testing.T) {
	a := NewAnalyzer(&stubScorer{value: 0.3})
	s := a.Score("I am so excited")
	if math.Abs(s.Polarity-0.5) > 1e-9 || s.PositiveWords != 1 || s.NegativeWords != 0 {
		t.Fatalf("unexpected score %+v", s)
	}
}

func TestDefaultLexicon(t *testing.T) {
	a := NewAnalyzer(nil)
	if got := a.Analyze("I am thrilled and passionate about this"); got != Positive {
		t.Fatalf("expected positive, got %s", got)
	}
	if got := a.Analyze("This feels terrible and hopeless"); got != Negative {
		t.Fatalf("expected negative, got %s", got)
	}
	if got := a.Analyze("What does a nurse do"); got != Neutral {
		t.Fatalf("expected neutral, got %s", got)
	}
}

func TestLexiconNegationAndRange(t *testing.T) {
	l := NewLexicon()
	if p := l.Polarity("this is not good"); p >= 0 {
		t.Fatalf("negated polarity should be negative, got %f", p)
	}
	if p := l.Polarity("extremely excellent perfect awesome"); p > 1 || p < -1 {
		t.Fatalf("polarity out of range: %f", p)
	}
	if p := l.Polarity("nothing scored here"); p != 0 {
		t.Fatalf("expected 0 for unscored text, got %f", p)
	}
}

func TestEmotionIndicators(t *testing.T) {
	got := EmotionIndicators("")
	if got != (Indicators{Positive: 0.33, Negative: 0.33, Neutral: 0.34}) {
		t.Fatalf("unexpected fallback %+v", got)
	}
	got = EmotionIndicators("I am excited but worried")
	if got.Positive != 0.5 || got.Negative != 0.5 || got.Neutral != 0 {
		t.Fatalf("unexpected ratios %+v", got)
	}
}

func TestParse(t *testing.T) {
	if Parse(" Positive ") != Positive || Parse("negative") != Negative || Parse("meh") != Neutral {
		t.Fatalf("Parse mapping broken")
	}
}
