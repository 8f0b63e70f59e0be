package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cyberforum/forum-api/internal/api/metrics"
	"github.com/cyberforum/forum-api/internal/core/domain"
	"github.com/cyberforum/forum-api/internal/core/ports"
)

const (
	// recentPostsLimit is the fixed cap on the post list; there is no
	// pagination beyond it.
	recentPostsLimit = 50

	titleMaxLen        = 100
	postContentMaxLen  = 5000
	replyContentMaxLen = 1000
)

// RecentPostsCache abstracts the optional read-through cache for the recent
// posts list (Redis). Implementations miss with ok=false; errors are treated
// as misses by the service.
type RecentPostsCache interface {
	Get(ctx context.Context) ([]domain.Post, bool, error)
	Set(ctx context.Context, posts []domain.Post) error
	Invalidate(ctx context.Context) error
}

// PostService implements the post store on top of a document repository and
// an optional recent-list cache.
type PostService struct {
	repo  ports.PostRepository
	cache RecentPostsCache // nil when the cache is disabled
	log   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, cache RecentPostsCache, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, cache: cache, log: log}
}

// ListRecent returns up to 50 posts ordered by createdAt descending. Cache
// failures fall through to the store and never fail the request.
func (s *PostService) ListRecent(ctx context.Context) ([]domain.Post, error) {
	if s.cache != nil {
		posts, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("post cache read failed, falling back to store")
		} else if ok {
			metrics.PostCacheTotal.WithLabelValues("hit").Inc()
			return posts, nil
		}
		metrics.PostCacheTotal.WithLabelValues("miss").Inc()
	}

	posts, err := s.repo.FindRecent(ctx, recentPostsLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list posts")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, posts); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate post cache")
		}
	}
	return posts, nil
}

// Create validates, trims, and persists a new post with an empty reply list.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	switch {
	case title == "":
		return nil, domain.NewValidationError("title", "title is required")
	case content == "":
		return nil, domain.NewValidationError("content", "content is required")
	case input.AuthorID == "":
		return nil, domain.NewValidationError("authorId", "authorId is required")
	case input.Username == "":
		return nil, domain.NewValidationError("username", "username is required")
	case utf8.RuneCountInString(title) > titleMaxLen:
		return nil, domain.NewValidationError("title", "title too long (max 100 characters)")
	case utf8.RuneCountInString(content) > postContentMaxLen:
		return nil, domain.NewValidationError("content", "content too long (max 5000 characters)")
	}

	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  input.AuthorID,
		Username:  input.Username,
		CreatedAt: time.Now().UTC(),
		Replies:   []domain.Reply{},
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.PostsCreatedTotal.Inc()
	s.log.Info().Str("post_id", post.ID.Hex()).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

// AddReply appends a reply to the target post via an atomic array push.
// A postID that is not a valid object id cannot resolve to any post and is
// reported as not found.
func (s *PostService) AddReply(ctx context.Context, postID string, input ports.ReplyInput) (*domain.Reply, error) {
	content := strings.TrimSpace(input.Content)

	switch {
	case content == "":
		return nil, domain.NewValidationError("content", "content is required")
	case input.AuthorID == "":
		return nil, domain.NewValidationError("authorId", "authorId is required")
	case input.Username == "":
		return nil, domain.NewValidationError("username", "username is required")
	case utf8.RuneCountInString(content) > replyContentMaxLen:
		return nil, domain.NewValidationError("content", "content too long (max 1000 characters)")
	}

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	reply := &domain.Reply{
		ID:        primitive.NewObjectID(),
		Content:   content,
		AuthorID:  input.AuthorID,
		Username:  input.Username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AppendReply(ctx, oid, reply); err != nil {
		if err != domain.ErrPostNotFound {
			s.log.Error().Err(err).Str("post_id", postID).Msg("failed to append reply")
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.RepliesCreatedTotal.Inc()
	s.log.Info().Str("post_id", postID).Str("reply_id", reply.ID.Hex()).Msg("reply added")
	return reply, nil
}

func (s *PostService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate post cache")
	}
}
