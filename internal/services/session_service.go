package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/careercounsel/internal/models"
	mongorepo "github.com/yoockh/careercounsel/internal/repositories/mongo"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/utils"
)

const (
	GoalFilterAll        = "all"
	GoalFilterCompleted  = "completed"
	GoalFilterInProgress = "in_progress"
)

var GoalCategories = []string{"Technical Skill", "Soft Skill", "Education", "Project", "Other"}

type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD, defaults to today
	Category    string `json:"category"` // defaults to Other
}

// IndexedGoal keeps a goal's position in the session list so filtered
// views can still toggle or delete the right one.
type IndexedGoal struct {
	Index int `json:"index"`
	models.SessionGoal
}

type SessionService interface {
	Start(ctx context.Context, userID uint) (*models.SessionContext, error)
	Get(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Save(ctx context.Context, s *models.SessionContext) error
	Reset(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Bind(ctx context.Context, sessionID string, userID uint) (*models.SessionContext, error)

	AddGoal(ctx context.Context, sessionID string, in GoalInput) (*IndexedGoal, error)
	ListGoals(ctx context.Context, sessionID, filter string) ([]IndexedGoal, error)
	ToggleGoal(ctx context.Context, sessionID string, index int) (*IndexedGoal, error)
	DeleteGoal(ctx context.Context, sessionID string, index int) error
}

type sessionService struct {
	sessions mongorepo.SessionRepository
	users    sqldb.UserRepository // optional, used to validate Bind
	activity ActivityRecorder     // optional
}

func NewSessionService(sessions mongorepo.SessionRepository, users sqldb.UserRepository, activity ActivityRecorder) SessionService {
	return &sessionService{sessions: sessions, users: users, activity: activity}
}

func (s *sessionService) Start(ctx context.Context, userID uint) (*models.SessionContext, error) {
	const op = "SessionService.Start"

	if userID != 0 {
		if err := s.checkUser(ctx, op, userID); err != nil {
			return nil, err
		}
	}
	sess := models.NewSessionContext(uuid.NewString(), time.Now().UTC())
	sess.UserID = userID
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create session", err)
	}
	return sess, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	const op = "SessionService.Get"

	if strings.TrimSpace(sessionID) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	out, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get session", err)
	}
	return out, nil
}

func (s *sessionService) Save(ctx context.Context, sess *models.SessionContext) error {
	const op = "SessionService.Save"

	if err := s.sessions.Save(ctx, sess); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save session", err)
	}
	return nil
}

func (s *sessionService) Reset(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Reset()
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) Bind(ctx context.Context, sessionID string, userID uint) (*models.SessionContext, error) {
	const op = "SessionService.Bind"

	if userID == 0 {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != 0 && sess.UserID != userID {
		return nil, utils.E(utils.CodeForbidden, op, "session belongs to another user", nil)
	}
	if err := s.checkUser(ctx, op, userID); err != nil {
		return nil, err
	}
	sess.UserID = userID
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) checkUser(ctx context.Context, op string, userID uint) error {
	if s.users == nil {
		return nil
	}
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return nil
}

func (s *sessionService) AddGoal(ctx context.Context, sessionID string, in GoalInput) (*IndexedGoal, error) {
	const op = "SessionService.AddGoal"

	goal, err := newGoal(in, time.Now())
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Goals = append(sess.Goals, goal)
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	if sess.UserID != 0 && s.activity != nil {
		s.activity.AddLearningGoal(ctx, sess.UserID, goal)
	}
	return &IndexedGoal{Index: len(sess.Goals) - 1, SessionGoal: goal}, nil
}

func newGoal(in GoalInput, now time.Time) (models.SessionGoal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.SessionGoal{}, errors.New("title is required")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Other"
	}
	known := false
	for _, c := range GoalCategories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return models.SessionGoal{}, errors.New("unknown category")
	}

	deadline := strings.TrimSpace(in.Deadline)
	if deadline == "" {
		deadline = now.Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, deadline); err != nil {
		return models.SessionGoal{}, errors.New("deadline must be YYYY-MM-DD")
	}

	return models.SessionGoal{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Deadline:    deadline,
		Category:    category,
		CreatedAt:   now.Format(time.DateOnly),
	}, nil
}

func (s *sessionService) ListGoals(ctx context.Context, sessionID, filter string) ([]IndexedGoal, error) {
	const op = "SessionService.ListGoals"

	filter = strings.ToLower(strings.TrimSpace(filter))
	switch filter {
	case "":
		filter = GoalFilterAll
	case GoalFilterAll, GoalFilterCompleted, GoalFilterInProgress:
	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "filter must be all, completed or in_progress", nil)
	}

	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := []IndexedGoal{}
	for i, g := range sess.Goals {
		if filter == GoalFilterCompleted && !g.Completed || filter == GoalFilterInProgress && g.Completed {
			continue
		}
		out = append(out, IndexedGoal{Index: i, SessionGoal: g})
	}
	return out, nil
}

func (s *sessionService) ToggleGoal(ctx context.Context, sessionID string, index int) (*IndexedGoal, error) {
	const op = "SessionService.ToggleGoal"

	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sess.Goals) {
		return nil, utils.E(utils.CodeNotFound, op, "goal not found", nil)
	}
	sess.Goals[index].Completed = !sess.Goals[index].Completed
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &IndexedGoal{Index: index, SessionGoal: sess.Goals[index]}, nil
}

func (s *sessionService) DeleteGoal(ctx context.Context, sessionID string, index int) error {
	const op = "SessionService.DeleteGoal"

	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sess.Goals) {
		return utils.E(utils.CodeNotFound, op, "goal not found", nil)
	}
	sess.Goals = append(sess.Goals[:index], sess.Goals[index+1:]...)
	return s.Save(ctx, sess)
}
