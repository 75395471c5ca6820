package nlp

import "testing"

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"I'm not sure what I want to do", IntentConfused},
		{"I'm confused about python", IntentConfused},
		{"I want to become a doctor", IntentGoalOriented},
		{"My dream job is in film", IntentDreamJob},
		{"I enjoy python and databases", IntentTechInterest},
		{"design, art and music", IntentCreativeMind},
		{"finance and accounting", IntentBusinessInterest},
		{"nurse at a hospital", IntentHealthcareInterest},
		{"teaching at a university", IntentEducationInterest},
		{"python design", IntentTechInterest},
		{"hello there", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tc := range cases {
		if got := DetectIntent(tc.text); got != tc.want {
			t.Fatalf("DetectIntent(%q)=%s want %s", tc.text, got, tc.want)
		}
	}
}

func TestIntentForCategory(t *testing.T) {
	if got := IntentForCategory(CategoryCreative); got != IntentCreativeMind {
		t.Fatalf("got %s", got)
	}
	if got := IntentForCategory(CategoryAll); got != IntentGeneral {
		t.Fatalf("got %s", got)
	}
}
