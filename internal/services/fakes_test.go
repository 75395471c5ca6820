package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/providers/webhook"
	"github.com/yoockh/careercounsel/internal/repositories/memory"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/utils"
)

var errBoom = errors.New("boom")

func testLog() *logrus.Logger { return logger.Discard() }

type fakeCareerRepo struct {
	records map[string]*models.CareerRecord
	gets    int
}

func newFakeCareerRepo(titles ...string) *fakeCareerRepo {
	r := &fakeCareerRepo{records: map[string]*models.CareerRecord{}}
	for i, t := range titles {
		r.records[t] = &models.CareerRecord{
			ID:          uint(i + 1),
			Title:       t,
			FieldName:   "Technology",
			Description: t + " description",
			Salary:      100000,
			GrowthRate:  0.2,
			Skills:      []string{"Python"},
			Roadmap:     []models.RoadmapStep{{StepOrder: 1, Title: "Start", Duration: "1 month"}},
		}
	}
	return r
}

func (r *fakeCareerRepo) Initialize(context.Context, seed.Loader) error { return nil }

func (r *fakeCareerRepo) GetByTitle(_ context.Context, title string) (*models.CareerRecord, error) {
	r.gets++
	rec, ok := r.records[title]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeCareerRepo) Search(_ context.Context, keywords []string, limit int) ([]models.CareerRecord, error) {
	return nil, nil
}

func (r *fakeCareerRepo) ListTitles(context.Context) ([]string, error) {
	var out []string
	for t := range r.records {
		out = append(out, t)
	}
	return out, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

// fakeUserRepo records every append; fail makes all writes error.
type fakeUserRepo struct {
	fail        bool
	nextID      uint
	users       map[uint]models.User
	interests   []models.UserInterest
	sentiments  []models.UserSentiment
	chats       []models.ChatMessage
	suggestions []models.UserCareerSuggestion
	goals       []models.LearningGoal
	personality []models.PersonalityResult
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[uint]models.User{}} }

func (r *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	if r.fail {
		return errBoom
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) AddInterest(_ context.Context, in *models.UserInterest) error {
	if r.fail {
		return errBoom
	}
	r.interests = append(r.interests, *in)
	return nil
}

func (r *fakeUserRepo) AddSentiment(_ context.Context, s *models.UserSentiment) error {
	if r.fail {
		return errBoom
	}
	r.sentiments = append(r.sentiments, *s)
	return nil
}

func (r *fakeUserRepo) AddChatMessage(_ context.Context, m *models.ChatMessage) error {
	if r.fail {
		return errBoom
	}
	r.chats = append(r.chats, *m)
	return nil
}

func (r *fakeUserRepo) AddCareerSuggestion(_ context.Context, s *models.UserCareerSuggestion) error {
	if r.fail {
		return errBoom
	}
	r.suggestions = append(r.suggestions, *s)
	return nil
}

func (r *fakeUserRepo) AddLearningGoal(_ context.Context, g *models.LearningGoal) error {
	if r.fail {
		return errBoom
	}
	r.goals = append(r.goals, *g)
	return nil
}

func (r *fakeUserRepo) AddPersonalityResult(_ context.Context, p *models.PersonalityResult) error {
	if r.fail {
		return errBoom
	}
	r.personality = append(r.personality, *p)
	return nil
}

func (r *fakeUserRepo) ListChatHistory(_ context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.chats {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeBackend struct {
	reply *webhook.Reply
	err   error
	got   []string
}

func (b *fakeBackend) Reply(_ context.Context, _ string, message string) (*webhook.Reply, error) {
	b.got = append(b.got, message)
	if b.err != nil {
		return nil, b.err
	}
	return b.reply, nil
}

type fakeArchive struct {
	objects map[string][]byte
}

func (a *fakeArchive) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	if a.objects == nil {
		a.objects = map[string][]byte{}
	}
	a.objects[objectName] = buf.Bytes()
	return "gs://plans/" + objectName, nil
}

func (a *fakeArchive) SignedGetURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://signed.example/" + objectName, nil
}

type fixture struct {
	careerRepo *fakeCareerRepo
	users      *fakeUserRepo
	careers    CareerService
	activity   ActivityRecorder
	sessions   SessionService
}

func newFixture() *fixture {
	repo := newFakeCareerRepo(
		"Software Developer", "Data Scientist", "Cybersecurity Analyst",
		"UX Designer", "Software Engineer", "Systems Analyst",
	)
	users := newFakeUserRepo()
	activity := NewActivityRecorder(users, testLog())
	return &fixture{
		careerRepo: repo,
		users:      users,
		careers:    NewCareerService(repo, nil, 0, testLog()),
		activity:   activity,
		sessions:   NewSessionService(memory.NewSessionRepo(0), users, activity),
	}
}
