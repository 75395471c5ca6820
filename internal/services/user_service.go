package services

import (
	"context"
	"strings"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/utils"
)

type UserService interface {
	Register(ctx context.Context, name, email string) (*models.User, error)
}

type userService struct {
	activity ActivityRecorder
}

func NewUserService(activity ActivityRecorder) UserService {
	return &userService{activity: activity}
}

func (s *userService) Register(ctx context.Context, name, email string) (*models.User, error) {
	const op = "UserService.Register"

	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}

	id, ok := s.activity.AddUser(ctx, name, email)
	if !ok {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", nil)
	}
	return &models.User{ID: id, Name: name, Email: email}, nil
}
