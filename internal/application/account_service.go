package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"usertaskapi/internal/domain/entity"
	"usertaskapi/internal/domain/repository"
	"usertaskapi/pkg/helpers"
)

var (
	// ErrInvalidCredentials is returned for unknown emails and for wrong
	// passwords alike, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already registered with this email")
	ErrUserNotFound       = errors.New("user not found")
)

// AccountService orchestrates registration and login over the user store,
// the password hasher and the token issuer.
type AccountService struct {
	Users  repository.UserRepository
	Tokens *helpers.TokenIssuer
	Logger *logrus.Logger
}

func NewAccountService(users repository.UserRepository, tokens *helpers.TokenIssuer, logger *logrus.Logger) *AccountService {
	return &AccountService{Users: users, Tokens: tokens, Logger: logger}
}

// Register creates a new account. Email comparison is exact-match; a hash
// failure is an internal error, never a rejection of the input.
func (s *AccountService) Register(ctx context.Context, name, email, password string) error {
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return err
	}

	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	}
	return nil
}

// Login verifies the credentials and issues a session token. Both failure
// paths collapse into ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, err
	}
	if u == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// ListUsersWithTasks returns every user together with their tasks.
func (s *AccountService) ListUsersWithTasks(ctx context.Context) ([]entity.UserWithTasks, error) {
	return s.Users.ListWithTasks(ctx)
}

// GetUserByID returns a single user with their tasks.
func (s *AccountService) GetUserByID(ctx context.Context, id int64) (*entity.UserWithTasks, error) {
	u, err := s.Users.GetWithTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
