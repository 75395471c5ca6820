// Package stt turns recorded speech into chat text.
package stt

import (
	"context"
	"strings"
)

type AudioFormat string

const (
	FormatLinear16 AudioFormat = "linear16" // raw or WAV, 16 kHz mono
	FormatFLAC     AudioFormat = "flac"
	FormatWebMOpus AudioFormat = "webm"
	FormatOggOpus  AudioFormat = "ogg"
)

// FormatFromContentType maps an upload's MIME type to a format. ok is false
// for anything the provider cannot decode.
func FormatFromContentType(contentType string) (AudioFormat, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "audio/wav", "audio/wave", "audio/x-wav", "audio/l16", "application/octet-stream":
		return FormatLinear16, true
	case "audio/flac", "audio/x-flac":
		return FormatFLAC, true
	case "audio/webm", "video/webm":
		return FormatWebMOpus, true
	case "audio/ogg", "application/ogg":
		return FormatOggOpus, true
	default:
		return "", false
	}
}

type Transcript struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type Provider interface {
	Transcribe(ctx context.Context, audio []byte, format AudioFormat, language string) (Transcript, error)
	Close() error
}
