// Package webhook talks to the conversational backend that words the
// assistant's replies. A REST webhook (Rasa style) is used when configured;
// otherwise a static responder answers from canned texts.
package webhook

import (
	"context"
	"errors"
	"fmt"
)

const (
	// NoResponseText is returned when the backend answered with nothing.
	NoResponseText = "I'm sorry, I didn't get a response. Could you try again?"
	// UnavailableText replaces a reply the backend could not produce.
	UnavailableText = "I'm having trouble reaching the conversation service right now. Please try again in a moment."
	// StatusTextFormat is used when the backend answered with a non-200 status.
	StatusTextFormat = "The conversation service answered with status %d. Please try again in a moment."
)

// StatusError is a non-200 answer from the webhook.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("conversation service returned status %d", e.StatusCode)
}

// FallbackText is the canned reply shown when Reply failed with err.
func FallbackText(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf(StatusTextFormat, se.StatusCode)
	}
	return UnavailableText
}

// Payload carries profile updates sent alongside a reply. A nil field was
// absent from the payload and leaves the profile untouched.
type Payload struct {
	Careers   []string `json:"careers,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Name      *string  `json:"name,omitempty"`
}

type Reply struct {
	Text   string
	Custom *Payload
}

type Backend interface {
	Reply(ctx context.Context, sender, message string) (*Reply, error)
}
