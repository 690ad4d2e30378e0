package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "askhub/internal/errors"
	"askhub/internal/service"
)

// UserHandler handles the admin-only user management pages.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers renders the user management page.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users.html", page(c, echo.Map{
		"Users": users,
	}))
}

// Promote grants the expert flag to the target user and returns to the
// listing. Idempotent; an unknown target renders the 404 page.
func (h *UserHandler) Promote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return notFound(c)
	}

	if err := h.userService.Promote(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/users")
}
