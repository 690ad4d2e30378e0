package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"askhub/internal/service"
	"askhub/internal/session"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// credentialsForm backs both the register and login forms.
type credentialsForm struct {
	Name     string `form:"name" validate:"required,max=64"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", page(c, nil))
}

// Register creates the account, starts a session and redirects to the
// feed. A taken name re-renders the form with the submitted name intact.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusOK, "register.html", page(c, echo.Map{
			"Error": "Name and password are required",
		}))
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "register.html", page(c, echo.Map{
			"Error": "Name and password are required",
			"Name":  form.Name,
		}))
	}

	user, err := h.authService.Register(c.Request().Context(), form.Name, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			return c.Render(http.StatusOK, "register.html", page(c, echo.Map{
				"Error": "User already registered",
				"Name":  form.Name,
			}))
		}
		return err
	}

	if err := h.sessions.Issue(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", page(c, nil))
}

// Login checks credentials and starts a session. Unknown name and wrong
// password produce distinct messages, per the historical behavior.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusOK, "login.html", page(c, echo.Map{
			"Error": "Name and password are required",
		}))
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "login.html", page(c, echo.Map{
			"Error": "Name and password are required",
			"Name":  form.Name,
		}))
	}

	user, err := h.authService.Login(c.Request().Context(), form.Name, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownName):
			return c.Render(http.StatusOK, "login.html", page(c, echo.Map{
				"Error": "User not found",
				"Name":  form.Name,
			}))
		case errors.Is(err, service.ErrWrongPassword):
			return c.Render(http.StatusOK, "login.html", page(c, echo.Map{
				"Error": "Invalid password",
				"Name":  form.Name,
			}))
		}
		return err
	}

	if err := h.sessions.Issue(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and redirects to the feed. Safe for
// anonymous callers.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
