package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
	"github.com/airlabs/air-tasks/pkg/apperr"
)

// AuthService handles registration and per-request credential checks.
// There is no session or token state; login simply verifies credentials
// and returns the user record.
type AuthService struct {
	Users  repository.UserRepository
	Events EventPublisher
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, events EventPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Events: events, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, apperr.New(apperr.KindMissingParameter, "all fields are required")
	}

	u := &entity.User{Email: in.Email, Password: in.Password, Name: in.Name}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperr.New(apperr.KindInvalidInput, "email already exists")
		}
		return nil, err
	}

	publishEvent(ctx, s.Events, s.Logger, Event{
		Type:   EventUserRegistered,
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	})
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindMissingParameter, "email and password required")
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if u.Password != password {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}
	return u, nil
}

// CheckAuth resolves a numeric user id to its account. A zero id or an
// unknown id is simply "not authenticated", never an error.
func (s *AuthService) CheckAuth(ctx context.Context, userID int64) (*entity.User, bool, error) {
	if userID <= 0 {
		return nil, false, nil
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}
