package ports

import (
	"context"
	"time"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
// Every mutation is a single atomic document operation; the repository never
// performs multi-document transactions.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	// FindByUserID returns ErrUserNotFound when no user has that id.
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	// UpdateLogin sets username and lastLogin on an existing user in one
	// atomic field update. CreatedAt is left untouched.
	UpdateLogin(ctx context.Context, userID, username string, at time.Time) error
}
