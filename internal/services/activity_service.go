package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/sentiment"
	"github.com/yoockh/careercounsel/internal/utils"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// ActivityRecorder appends to the per-user logs. Write failures are logged
// and reported as a false/zero result so callers can carry on without the
// side record.
type ActivityRecorder interface {
	AddUser(ctx context.Context, name, email string) (uint, bool)
	AddUserInterest(ctx context.Context, userID uint, interest string) bool
	AddUserSentiment(ctx context.Context, userID uint, s sentiment.Sentiment) bool
	AddChatMessage(ctx context.Context, userID uint, message string, role models.ChatRole, meta map[string]any) bool
	AddCareerSuggestion(ctx context.Context, userID, careerID uint, relevance float64) bool
	AddLearningGoal(ctx context.Context, userID uint, g models.SessionGoal) bool
	AddPersonalityResult(ctx context.Context, p models.PersonalityResult) bool
	ChatHistory(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error)
}

type activityRecorder struct {
	users sqldb.UserRepository
	log   *logrus.Logger
}

func NewActivityRecorder(users sqldb.UserRepository, log *logrus.Logger) ActivityRecorder {
	return &activityRecorder{users: users, log: log}
}

func (a *activityRecorder) fault(op string, userID uint, err error) {
	a.log.WithFields(logrus.Fields{"op": op, "user_id": userID}).WithError(err).Error("activity write failed")
}

func (a *activityRecorder) AddUser(ctx context.Context, name, email string) (uint, bool) {
	u := &models.User{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if err := a.users.CreateUser(ctx, u); err != nil {
		a.fault("Activity.AddUser", 0, err)
		return 0, false
	}
	return u.ID, true
}

func (a *activityRecorder) AddUserInterest(ctx context.Context, userID uint, interest string) bool {
	if err := a.users.AddInterest(ctx, &models.UserInterest{UserID: userID, Interest: interest}); err != nil {
		a.fault("Activity.AddUserInterest", userID, err)
		return false
	}
	return true
}

func (a *activityRecorder) AddUserSentiment(ctx context.Context, userID uint, s sentiment.Sentiment) bool {
	if err := a.users.AddSentiment(ctx, &models.UserSentiment{UserID: userID, Sentiment: string(s)}); err != nil {
		a.fault("Activity.AddUserSentiment", userID, err)
		return false
	}
	return true
}

func (a *activityRecorder) AddChatMessage(ctx context.Context, userID uint, message string, role models.ChatRole, meta map[string]any) bool {
	row := &models.ChatMessage{UserID: userID, Message: message, Role: role}
	if len(meta) > 0 {
		b, err := json.Marshal(meta)
		if err != nil {
			a.fault("Activity.AddChatMessage", userID, err)
			return false
		}
		row.Metadata = datatypes.JSON(b)
	}
	if err := a.users.AddChatMessage(ctx, row); err != nil {
		a.fault("Activity.AddChatMessage", userID, err)
		return false
	}
	return true
}

func (a *activityRecorder) AddCareerSuggestion(ctx context.Context, userID, careerID uint, relevance float64) bool {
	row := &models.UserCareerSuggestion{UserID: userID, CareerID: careerID, RelevanceScore: relevance}
	if err := a.users.AddCareerSuggestion(ctx, row); err != nil {
		a.fault("Activity.AddCareerSuggestion", userID, err)
		return false
	}
	return true
}

func (a *activityRecorder) AddLearningGoal(ctx context.Context, userID uint, g models.SessionGoal) bool {
	row := &models.LearningGoal{
		UserID:      userID,
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		Deadline:    g.Deadline,
		Completed:   g.Completed,
	}
	if err := a.users.AddLearningGoal(ctx, row); err != nil {
		a.fault("Activity.AddLearningGoal", userID, err)
		return false
	}
	return true
}

func (a *activityRecorder) AddPersonalityResult(ctx context.Context, p models.PersonalityResult) bool {
	p.ID = 0
	if err := a.users.AddPersonalityResult(ctx, &p); err != nil {
		a.fault("Activity.AddPersonalityResult", p.UserID, err)
		return false
	}
	return true
}

func (a *activityRecorder) ChatHistory(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	const op = "Activity.ChatHistory"

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	rows, err := a.users.ListChatHistory(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load chat history", err)
	}
	return rows, nil
}
