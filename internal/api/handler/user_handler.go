package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cyberforum/forum-api/internal/core/domain"
	"github.com/cyberforum/forum-api/internal/core/ports"
)

// UserHandler exposes the user directory over HTTP.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a fresh anonymous identity.
//
// @Summary      Register a new anonymous user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Desired display name"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		UserID:   user.UserID,
		Username: user.Username,
	})
}

// Get fetches a user document by its public id.
//
// @Summary      Fetch a user by id
// @Tags         users
// @Produce      json
// @Param        userId  query     string  true  "10-digit user id"
// @Success      200     {object}  userResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) Get(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return domain.NewValidationError("userId", "userId is required")
	}

	user, err := h.service.Lookup(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Login claims an identity by its 10-digit id, creating it when unseen.
//
// @Summary      Log in with a 10-digit id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials (the id is the only secret)"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /session [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Login(c.Request().Context(), req.UserID, req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		UserID:   user.UserID,
		Username: user.Username,
	})
}
