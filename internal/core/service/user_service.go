package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/cyberforum/forum-api/internal/api/metrics"
	"github.com/cyberforum/forum-api/internal/core/domain"
	"github.com/cyberforum/forum-api/internal/core/ports"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
)

var userIDPattern = regexp.MustCompile(`^\d{10}$`)

// UserService implements the anonymous user directory.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register creates a fresh identity with a newly generated 10-digit id and
// createdAt = lastLogin = now.
func (s *UserService) Register(ctx context.Context, username string) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		UserID:    GenerateUserID(),
		Username:  strings.TrimSpace(username),
		CreatedAt: now,
		LastLogin: now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("failed to register user")
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login upserts by the client-supplied id. A known id gets its username and
// lastLogin updated (createdAt is preserved); an unseen id creates a new user
// with that exact id. No secret beyond the id itself is checked.
func (s *UserService) Login(ctx context.Context, userID, username string) (*domain.User, error) {
	if !userIDPattern.MatchString(userID) {
		return nil, domain.NewValidationError("userId", "invalid id: must be exactly 10 digits")
	}

	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		return nil, domain.NewValidationError("username", "username must be between 3 and 20 characters")
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := s.repo.UpdateLogin(ctx, userID, username, now); err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("failed to update login")
			return nil, err
		}
		existing.Username = username
		existing.LastLogin = now
		metrics.LoginsTotal.WithLabelValues("updated").Inc()
		s.log.Info().Str("user_id", userID).Msg("user logged in")
		return existing, nil

	case errors.Is(err, domain.ErrUserNotFound):
		user := &domain.User{
			UserID:    userID,
			Username:  username,
			CreatedAt: now,
			LastLogin: now,
		}
		if err := s.repo.Insert(ctx, user); err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create user on login")
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("created").Inc()
		s.log.Info().Str("user_id", userID).Msg("new user created on login")
		return user, nil

	default:
		s.log.Error().Err(err).Str("user_id", userID).Msg("login lookup failed")
		return nil, err
	}
}

// Lookup retrieves a user by id without mutating anything.
func (s *UserService) Lookup(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByUserID(ctx, userID)
}
