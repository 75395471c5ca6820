package models

import "time"

const (
	ViewChat    = "chat"
	ViewRoadmap = "roadmap"
)

// UserProfile is what the assistant has learned about the user so far.
type UserProfile struct {
	Name             string   `bson:"name" json:"name"`
	Interests        []string `bson:"interests" json:"interests"`
	Sentiment        string   `bson:"sentiment" json:"sentiment"`
	SuggestedCareers []string `bson:"suggested_careers" json:"suggested_careers"`
}

type ChatTurn struct {
	Role    ChatRole `bson:"role" json:"role"`
	Content string   `bson:"content" json:"content"`
}

// SessionGoal is a weekly learning goal kept with the session.
type SessionGoal struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Deadline    string `bson:"deadline" json:"deadline"` // YYYY-MM-DD
	Category    string `bson:"category" json:"category"`
	Completed   bool   `bson:"completed" json:"completed"`
	CreatedAt   string `bson:"created_at" json:"created_at"` // YYYY-MM-DD
}

// SessionContext carries all per-conversation state between requests.
type SessionContext struct {
	SessionID      string        `bson:"session_id" json:"session_id"` // uuid v4
	UserID         uint          `bson:"user_id" json:"user_id"`       // 0 until bound
	Profile        UserProfile   `bson:"profile" json:"profile"`
	Messages       []ChatTurn    `bson:"messages" json:"messages"`
	SelectedCareer string        `bson:"selected_career" json:"selected_career"`
	CurrentView    string        `bson:"current_view" json:"current_view"`
	Goals          []SessionGoal `bson:"goals" json:"goals"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func NewSessionContext(id string, now time.Time) *SessionContext {
	s := &SessionContext{SessionID: id, CreatedAt: now}
	s.Reset()
	s.UpdatedAt = now
	return s
}

// Reset clears everything except the session id, the bound user and the
// creation time.
func (s *SessionContext) Reset() {
	*s = SessionContext{
		SessionID: s.SessionID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Profile: UserProfile{
			Interests:        []string{},
			Sentiment:        "neutral",
			SuggestedCareers: []string{},
		},
		Messages:    []ChatTurn{},
		CurrentView: ViewChat,
		Goals:       []SessionGoal{},
	}
}

// Clone returns a deep copy so stores never share slices with callers.
func (s *SessionContext) Clone() *SessionContext {
	if s == nil {
		return nil
	}
	c := *s
	c.Profile.Interests = append([]string{}, s.Profile.Interests...)
	c.Profile.SuggestedCareers = append([]string{}, s.Profile.SuggestedCareers...)
	c.Messages = append([]ChatTurn{}, s.Messages...)
	c.Goals = append([]SessionGoal{}, s.Goals...)
	return &c
}
