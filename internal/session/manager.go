package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"askhub/internal/model"
	"askhub/internal/repository"
)

// CookieName is the session cookie set on login and registration.
const CookieName = "askhub_session"

const userContextKey = "askhub.currentUser"

// Manager issues session cookies and resolves the current user for each
// request. The user record is loaded fresh from the store every time so
// promotions take effect on the next request.
type Manager struct {
	tokens *TokenService
	store  StoreInterface
	users  repository.UserRepository
}

// NewManager creates a session manager.
func NewManager(tokens *TokenService, store StoreInterface, users repository.UserRepository) *Manager {
	return &Manager{
		tokens: tokens,
		store:  store,
		users:  users,
	}
}

// Issue starts a session for the user and sets the cookie on the response.
func (m *Manager) Issue(c echo.Context, user *model.User) error {
	sessionID, token, err := m.tokens.Generate(user.Name)
	if err != nil {
		return err
	}

	rec := Record{UserID: user.ID, UserName: user.Name}
	if err := m.store.Save(c.Request().Context(), sessionID, rec, m.tokens.TTL()); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.tokens.TTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear destroys the current session, if any, and expires the cookie.
// Safe for anonymous callers.
func (m *Manager) Clear(c echo.Context) error {
	if cookie, err := c.Cookie(CookieName); err == nil {
		if claims, err := m.tokens.Validate(cookie.Value); err == nil {
			if err := m.store.Delete(c.Request().Context(), claims.ID); err != nil {
				return err
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// LoadUser resolves the session cookie into a user record and stashes it
// in the request context. Requests without a valid session continue as
// anonymous; guards downstream decide whether that is acceptable.
func (m *Manager) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			return next(c)
		}

		claims, err := m.tokens.Validate(cookie.Value)
		if err != nil {
			return next(c)
		}

		rec, err := m.store.Get(c.Request().Context(), claims.ID)
		if err != nil {
			return next(c)
		}

		user, err := m.users.FindByID(c.Request().Context(), rec.UserID)
		if err != nil {
			return next(c)
		}

		SetCurrentUser(c, user)
		return next(c)
	}
}

// SetCurrentUser stashes the user in the request context. LoadUser uses it
// on the request path; handler tests use it to simulate a session.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user resolved by LoadUser, or nil for anonymous
// requests.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// RequireUser redirects anonymous requests to the login page.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireExpert redirects anonymous requests to login and non-expert
// users to the feed.
func RequireExpert(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		if !user.Expert {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

// RequireAdmin redirects anonymous requests to login and non-admin users
// to the feed.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		if !user.Admin {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
