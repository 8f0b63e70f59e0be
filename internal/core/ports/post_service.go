package ports

import (
	"context"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
	Username string
}

// ReplyInput carries the fields for a new reply.
type ReplyInput struct {
	Content  string
	AuthorID string
	Username string
}

// PostService defines use-case operations for the post store.
type PostService interface {
	// ListRecent returns the newest posts, newest first, capped at a fixed
	// limit. No cursor or pagination beyond the cap.
	ListRecent(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	// AddReply appends a reply to the post identified by the hex id.
	AddReply(ctx context.Context, postID string, input ReplyInput) (*domain.Reply, error)
}
