package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cyberforum/forum-api/internal/core/ports"
)

// PostHandler exposes the post store over HTTP.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List returns the most recent posts, newest first.
//
// @Summary      List recent posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// Create stores a new post.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(*post))
}

// AddReply appends a reply to an existing post.
//
// @Summary      Reply to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        postId  path      string             true  "Post id"
// @Param        body    body      createReplyRequest true  "Reply fields"
// @Success      201     {object}  replyResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /posts/{postId}/replies [post]
func (h *PostHandler) AddReply(c echo.Context) error {
	var req createReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.service.AddReply(c.Request().Context(), c.Param("postId"), ports.ReplyInput{
		Content:  req.Content,
		AuthorID: req.AuthorID,
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toReplyResponse(*reply))
}
