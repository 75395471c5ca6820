package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/utils"
)

// UserRepository appends per-user activity. Rows are never updated.
type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	AddInterest(ctx context.Context, in *models.UserInterest) error
	AddSentiment(ctx context.Context, s *models.UserSentiment) error
	AddChatMessage(ctx context.Context, m *models.ChatMessage) error
	AddCareerSuggestion(ctx context.Context, s *models.UserCareerSuggestion) error
	AddLearningGoal(ctx context.Context, g *models.LearningGoal) error
	AddPersonalityResult(ctx context.Context, p *models.PersonalityResult) error
	ListChatHistory(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) AddInterest(ctx context.Context, in *models.UserInterest) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *userRepo) AddSentiment(ctx context.Context, s *models.UserSentiment) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *userRepo) AddChatMessage(ctx context.Context, m *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *userRepo) AddCareerSuggestion(ctx context.Context, s *models.UserCareerSuggestion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *userRepo) AddLearningGoal(ctx context.Context, g *models.LearningGoal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *userRepo) AddPersonalityResult(ctx context.Context, p *models.PersonalityResult) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListChatHistory returns the latest messages, oldest first.
func (r *userRepo) ListChatHistory(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
