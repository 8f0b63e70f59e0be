package ports

import (
	"context"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

// UserService is the user directory: anonymous identities keyed by a
// 10-digit numeric id.
type UserService interface {
	// Register creates a fresh identity with a newly generated id.
	Register(ctx context.Context, username string) (*domain.User, error)
	// Login upserts by the client-supplied id: an existing user gets its
	// username and lastLogin updated, an unseen id creates a new user with
	// that exact id. Possession of the id is the only check.
	Login(ctx context.Context, userID, username string) (*domain.User, error)
	// Lookup returns ErrUserNotFound for unknown ids. Read-only.
	Lookup(ctx context.Context, userID string) (*domain.User, error)
}
