package handler

import (
	"time"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

// --- Domain → HTTP response ---

func toPostResponse(p domain.Post) postResponse {
	replies := make([]replyResponse, len(p.Replies))
	for i, r := range p.Replies {
		replies[i] = toReplyResponse(r)
	}
	return postResponse{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Username:  p.Username,
		CreatedAt: formatTime(p.CreatedAt),
		Replies:   replies,
	}
}

func toReplyResponse(r domain.Reply) replyResponse {
	return replyResponse{
		ID:        r.ID.Hex(),
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		Username:  r.Username,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func toPostListResponse(posts []domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		CreatedAt: formatTime(u.CreatedAt),
		LastLogin: formatTime(u.LastLogin),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
