package webhook

import (
	"context"

	"github.com/yoockh/careercounsel/internal/nlp"
)

const DefaultReply = "I understand you're interested in exploring career options. Could you tell me more about your interests and skills? This will help me provide more personalized guidance."

var cannedReplies = map[nlp.Intent]string{
	nlp.IntentConfused:           "It's okay not to have everything figured out yet. Tell me what you enjoy doing, at work or outside of it, and we'll explore careers that fit you.",
	nlp.IntentGoalOriented:       "Having a clear goal is a great start. Open one of the suggested careers to see a step-by-step roadmap you can follow.",
	nlp.IntentDreamJob:           "Let's work toward that dream. Tell me what draws you to it and I'll suggest careers and a roadmap to get there.",
	nlp.IntentTechInterest:       "Technology offers a lot of paths. Based on what you shared, these tech careers could be a good match. Open one to see its roadmap.",
	nlp.IntentCreativeMind:       "You have a creative side worth building on. These creative careers could suit you. Open one to see how to get started.",
	nlp.IntentBusinessInterest:   "Business skills open many doors. Here are some business careers that match your interests. Open one to see its roadmap.",
	nlp.IntentHealthcareInterest: "Healthcare is a meaningful field with steady demand. These careers fit what you described. Open one to see the path in.",
	nlp.IntentEducationInterest:  "Helping others learn is a rewarding path. These education careers could be a good fit. Open one to see its roadmap.",
}

// Static answers from a fixed table keyed by the detected intent.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (Static) Reply(_ context.Context, _ string, message string) (*Reply, error) {
	if text, ok := cannedReplies[nlp.DetectIntent(message)]; ok {
		return &Reply{Text: text}, nil
	}
	return &Reply{Text: DefaultReply}, nil
}
