package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

// UserService keeps the minimal account records that resumes and swipes hang
// off. Passwords and sessions are handled by the surrounding application,
// not here.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

type CreateUserParams struct {
	Username  string
	Role      string
	FirstName string
	LastName  string
	Email     string
}

func (s *UserService) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if params.Role != models.RoleCandidate && params.Role != models.RoleRecruiter {
		return nil, fmt.Errorf("%w: role must be %q or %q", models.ErrValidation, models.RoleCandidate, models.RoleRecruiter)
	}

	user := &models.User{
		Username:  username,
		Role:      params.Role,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q is taken", models.ErrValidation, username)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, id)
	}
	return user, err
}
