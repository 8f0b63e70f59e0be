package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts and their embedded
// replies.
type PostRepository interface {
	// Insert stores a new post and assigns its id.
	Insert(ctx context.Context, post *domain.Post) error
	// FindRecent returns up to limit posts ordered by createdAt descending.
	FindRecent(ctx context.Context, limit int) ([]domain.Post, error)
	// AppendReply atomically pushes the reply onto the post's replies array.
	// A read-modify-write of the whole document would lose concurrent
	// appends. Returns ErrPostNotFound when the post does not exist.
	AppendReply(ctx context.Context, postID primitive.ObjectID, reply *domain.Reply) error
}
