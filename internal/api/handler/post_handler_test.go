package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cyberforum/forum-api/internal/core/domain"
	"github.com/cyberforum/forum-api/internal/core/ports"
)

type stubPostService struct {
	listFn   func(ctx context.Context) ([]domain.Post, error)
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	replyFn  func(ctx context.Context, postID string, input ports.ReplyInput) (*domain.Reply, error)
}

func (s *stubPostService) ListRecent(ctx context.Context) ([]domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) AddReply(ctx context.Context, postID string, input ports.ReplyInput) (*domain.Reply, error) {
	return s.replyFn(ctx, postID, input)
}

func TestPostHandler_List_Success(t *testing.T) {
	created := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	postID := primitive.NewObjectID()
	stub := &stubPostService{
		listFn: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{{
				ID:        postID,
				Title:     "hello",
				Content:   "first",
				AuthorID:  "1234567890",
				Username:  "anon",
				CreatedAt: created,
				Replies: []domain.Reply{{
					ID:        primitive.NewObjectID(),
					Content:   "welcome",
					AuthorID:  "0987654321",
					Username:  "greeter",
					CreatedAt: created.Add(time.Minute),
				}},
			}}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/posts", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 post, got %d", len(resp))
	}
	if resp[0]["id"] != postID.Hex() {
		t.Errorf("post id must serialize as hex string, got %v", resp[0]["id"])
	}
	if resp[0]["createdAt"] != "2026-03-02T09:30:00Z" {
		t.Errorf("createdAt must serialize as string, got %v", resp[0]["createdAt"])
	}
	replies, ok := resp[0]["replies"].([]any)
	if !ok || len(replies) != 1 {
		t.Fatalf("expected embedded replies, got %v", resp[0]["replies"])
	}
}

func TestPostHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubPostService{
		listFn: func(ctx context.Context) ([]domain.Post, error) { return nil, nil },
	}
	h := NewPostHandler(stub)

	c, rec := newContext(t, http.MethodGet, "/posts", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("empty list must serialize as [], got %q", body)
	}
}

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.Title != "hello" || input.AuthorID != "1234567890" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Post{
				ID:        primitive.NewObjectID(),
				Title:     input.Title,
				Content:   input.Content,
				AuthorID:  input.AuthorID,
				Username:  input.Username,
				CreatedAt: time.Now().UTC(),
				Replies:   []domain.Reply{},
			}, nil
		},
	}
	h := NewPostHandler(stub)

	body := `{"title":"hello","content":"first","authorId":"1234567890","username":"anon"}`
	c, rec := newContext(t, http.MethodPost, "/posts", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if replies, ok := resp["replies"].([]any); !ok || len(replies) != 0 {
		t.Errorf("new post must carry an empty replies array, got %v", resp["replies"])
	}
}

func TestPostHandler_Create_MissingFields(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newContext(t, http.MethodPost, "/posts", `{"title":"hello"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_AddReply_Success(t *testing.T) {
	postID := primitive.NewObjectID()
	stub := &stubPostService{
		replyFn: func(ctx context.Context, id string, input ports.ReplyInput) (*domain.Reply, error) {
			if id != postID.Hex() {
				t.Fatalf("unexpected post id: %q", id)
			}
			return &domain.Reply{
				ID:        primitive.NewObjectID(),
				Content:   input.Content,
				AuthorID:  input.AuthorID,
				Username:  input.Username,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewPostHandler(stub)

	body := `{"content":"nice","authorId":"0987654321","username":"replier"}`
	c, rec := newContext(t, http.MethodPost, "/posts/"+postID.Hex()+"/replies", body)
	c.SetParamNames("postId")
	c.SetParamValues(postID.Hex())

	if err := h.AddReply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["content"] != "nice" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_AddReply_PostNotFound(t *testing.T) {
	stub := &stubPostService{
		replyFn: func(ctx context.Context, id string, input ports.ReplyInput) (*domain.Reply, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	body := `{"content":"hi","authorId":"0987654321","username":"replier"}`
	c, _ := newContext(t, http.MethodPost, "/posts/ffffffffffffffffffffffff/replies", body)
	c.SetParamNames("postId")
	c.SetParamValues("ffffffffffffffffffffffff")

	if err := h.AddReply(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
