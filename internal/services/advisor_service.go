package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/nlp"
	"github.com/yoockh/careercounsel/internal/providers/stt"
	"github.com/yoockh/careercounsel/internal/providers/webhook"
	"github.com/yoockh/careercounsel/internal/recommend"
	"github.com/yoockh/careercounsel/internal/sentiment"
	"github.com/yoockh/careercounsel/internal/utils"
)

const maxMessageLen = 4000

// ChatReply is everything one chat turn produces.
type ChatReply struct {
	SessionID string                `json:"session_id"`
	Reply     string                `json:"reply"`
	Intent    nlp.Intent            `json:"intent"`
	Sentiment sentiment.Sentiment   `json:"sentiment"`
	Tone      sentiment.Tone        `json:"tone"`
	Keywords  nlp.Keywords          `json:"keywords"`
	Suggested []string              `json:"suggested_careers"`
	Cards     []models.CareerRecord `json:"cards"`
	Degraded  bool                  `json:"degraded"`
}

type SentimentReport struct {
	Score      sentiment.Score      `json:"score"`
	Indicators sentiment.Indicators `json:"indicators"`
	Tone       sentiment.Tone       `json:"tone"`
}

type VoiceReply struct {
	Transcript stt.Transcript `json:"transcript"`
	*ChatReply
}

type AdvisorService interface {
	Chat(ctx context.Context, sessionID, text string) (*ChatReply, error)
	Voice(ctx context.Context, sessionID string, audio []byte, format stt.AudioFormat, language string) (*VoiceReply, error)

	Keywords(text string) nlp.Keywords
	Intent(text string) nlp.Intent
	Sentiment(text string) SentimentReport
	Recommend(kw nlp.Keywords, s sentiment.Sentiment, limit int) []string
}

type advisorService struct {
	sessions    SessionService
	careers     CareerService
	activity    ActivityRecorder // optional
	backend     webhook.Backend
	speech      stt.Provider // optional
	analyzer    *sentiment.Analyzer
	recommender *recommend.Recommender
	log         *logrus.Logger
}

type AdvisorDeps struct {
	Sessions    SessionService
	Careers     CareerService
	Activity    ActivityRecorder
	Backend     webhook.Backend
	Speech      stt.Provider
	Analyzer    *sentiment.Analyzer
	Recommender *recommend.Recommender
	Log         *logrus.Logger
}

func NewAdvisorService(d AdvisorDeps) AdvisorService {
	if d.Backend == nil {
		d.Backend = webhook.NewStatic()
	}
	if d.Analyzer == nil {
		d.Analyzer = sentiment.NewAnalyzer(nil)
	}
	if d.Recommender == nil {
		d.Recommender = recommend.New(nil)
	}
	return &advisorService{
		sessions:    d.Sessions,
		careers:     d.Careers,
		activity:    d.Activity,
		backend:     d.Backend,
		speech:      d.Speech,
		analyzer:    d.Analyzer,
		recommender: d.Recommender,
		log:         d.Log,
	}
}

func (s *advisorService) Keywords(text string) nlp.Keywords { return nlp.ExtractKeywords(text) }

func (s *advisorService) Intent(text string) nlp.Intent { return nlp.DetectIntent(text) }

func (s *advisorService) Sentiment(text string) SentimentReport {
	sc := s.analyzer.Score(text)
	return SentimentReport{
		Score:      sc,
		Indicators: sentiment.EmotionIndicators(text),
		Tone:       sentiment.ResponseTone(sc.Sentiment),
	}
}

func (s *advisorService) Recommend(kw nlp.Keywords, sent sentiment.Sentiment, limit int) []string {
	return s.recommender.Recommend(kw, sent, limit)
}

func (s *advisorService) Chat(ctx context.Context, sessionID, text string) (*ChatReply, error) {
	const op = "AdvisorService.Chat"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}
	if len(text) > maxMessageLen {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is too long", nil)
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kw := nlp.ExtractKeywords(text)
	intent := nlp.DetectIntent(text)
	sent := s.analyzer.Analyze(text)

	newInterests := mergeUnique(sess.Profile.Interests, kw.All())
	sess.Profile.Sentiment = string(sent)
	sess.Profile.Interests = append(sess.Profile.Interests, newInterests...)
	if !kw.Empty() {
		sess.Profile.SuggestedCareers = s.recommender.Recommend(kw, sent, recommend.DefaultLimit)
	}

	out := &ChatReply{
		SessionID: sess.SessionID,
		Intent:    intent,
		Sentiment: sent,
		Tone:      sentiment.ResponseTone(sent),
		Keywords:  kw,
	}

	reply, err := s.backend.Reply(ctx, sess.SessionID, nlp.Normalize(text))
	if err != nil {
		s.log.WithError(err).WithField("session_id", sess.SessionID).Warn("conversation backend unavailable")
		out.Reply = webhook.FallbackText(err)
		out.Degraded = true
	} else {
		out.Reply = sentiment.AdjustResponse(reply.Text, sent)
		applyPayload(&sess.Profile, reply.Custom)
	}

	out.Suggested = append([]string{}, sess.Profile.SuggestedCareers...)
	out.Cards = s.careers.Cards(ctx, out.Suggested)

	sess.Messages = append(sess.Messages,
		models.ChatTurn{Role: models.RoleUser, Content: text},
		models.ChatTurn{Role: models.RoleAssistant, Content: out.Reply},
	)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	if sess.UserID != 0 && s.activity != nil {
		s.recordTurn(ctx, sess.UserID, text, newInterests, out)
	}
	return out, nil
}

func (s *advisorService) recordTurn(ctx context.Context, userID uint, text string, interests []string, out *ChatReply) {
	for _, in := range interests {
		s.activity.AddUserInterest(ctx, userID, in)
	}
	s.activity.AddUserSentiment(ctx, userID, out.Sentiment)
	s.activity.AddChatMessage(ctx, userID, text, models.RoleUser, map[string]any{
		"intent":    out.Intent,
		"sentiment": out.Sentiment,
		"keywords":  out.Keywords.All(),
	})
	s.activity.AddChatMessage(ctx, userID, out.Reply, models.RoleAssistant, map[string]any{
		"degraded": out.Degraded,
	})
	for i, c := range out.Cards {
		s.activity.AddCareerSuggestion(ctx, userID, c.ID, float64(len(out.Cards)-i)/float64(len(out.Cards)))
	}
}

func (s *advisorService) Voice(ctx context.Context, sessionID string, audio []byte, format stt.AudioFormat, language string) (*VoiceReply, error) {
	const op = "AdvisorService.Voice"

	if s.speech == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "speech recognition is not configured", nil)
	}
	if len(audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio is required", nil)
	}

	tr, err := s.speech.Transcribe(ctx, audio, format, language)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to transcribe audio", err)
	}
	if strings.TrimSpace(tr.Text) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no speech recognized", nil)
	}

	reply, err := s.Chat(ctx, sessionID, tr.Text)
	if err != nil {
		return nil, err
	}
	return &VoiceReply{Transcript: tr, ChatReply: reply}, nil
}

// applyPayload copies the fields the backend chose to set.
func applyPayload(p *models.UserProfile, c *webhook.Payload) {
	if c == nil {
		return
	}
	if c.Careers != nil {
		p.SuggestedCareers = append([]string{}, c.Careers...)
	}
	if c.Interests != nil {
		p.Interests = append([]string{}, c.Interests...)
	}
	if c.Name != nil {
		p.Name = strings.TrimSpace(*c.Name)
	}
}

// mergeUnique returns the items of add that are neither in have nor
// earlier in add, in order.
func mergeUnique(have, add []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(have)+len(add))
	for _, h := range have {
		seen[h] = struct{}{}
	}
	for _, a := range add {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
