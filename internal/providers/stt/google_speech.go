package stt

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

type GoogleSpeech struct {
	c *speech.Client

	DefaultLanguage string
}

func NewGoogleSpeech(ctx context.Context, defaultLanguage string) (*GoogleSpeech, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	if defaultLanguage == "" {
		defaultLanguage = "en-US"
	}
	return &GoogleSpeech{c: c, DefaultLanguage: defaultLanguage}, nil
}

func (g *GoogleSpeech) Close() error { return g.c.Close() }

// Transcribe joins the top alternative of every recognized segment.
// Confidence is the mean over segments.
func (g *GoogleSpeech) Transcribe(ctx context.Context, audio []byte, format AudioFormat, language string) (Transcript, error) {
	if language == "" {
		language = g.DefaultLanguage
	}

	resp, err := g.c.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: recognitionConfig(format, language),
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return Transcript{}, err
	}

	var parts []string
	var conf float64
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 || r.Alternatives[0].Transcript == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(r.Alternatives[0].Transcript))
		conf += float64(r.Alternatives[0].Confidence)
	}
	if len(parts) == 0 {
		return Transcript{}, nil
	}
	return Transcript{Text: strings.Join(parts, " "), Confidence: conf / float64(len(parts))}, nil
}

func recognitionConfig(format AudioFormat, language string) *speechpb.RecognitionConfig {
	cfg := &speechpb.RecognitionConfig{
		LanguageCode:               language,
		EnableAutomaticPunctuation: true,
	}
	switch format {
	case FormatFLAC:
		// rate comes from the FLAC header
		cfg.Encoding = speechpb.RecognitionConfig_FLAC
	case FormatWebMOpus:
		cfg.Encoding = speechpb.RecognitionConfig_WEBM_OPUS
		cfg.SampleRateHertz = 48000
	case FormatOggOpus:
		cfg.Encoding = speechpb.RecognitionConfig_OGG_OPUS
		cfg.SampleRateHertz = 48000
	default:
		cfg.Encoding = speechpb.RecognitionConfig_LINEAR16
		cfg.SampleRateHertz = 16000
	}
	return cfg
}
