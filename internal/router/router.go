package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"askhub/internal/handler"
	"askhub/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *session.Manager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	questionHandler *handler.QuestionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Every route sees the current user; the feed and question pages
	// render differently for logged-in visitors.
	e.Use(sessions.LoadUser)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", questionHandler.Feed)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/question/:questionID", questionHandler.View)

	// Logged-in routes
	e.GET("/ask", questionHandler.AskForm, session.RequireUser)
	e.POST("/ask", questionHandler.Ask, session.RequireUser)

	// Expert routes
	e.GET("/unanswered", questionHandler.Unanswered, session.RequireExpert)
	e.GET("/answer/:questionID", questionHandler.AnswerForm, session.RequireExpert)
	e.POST("/answer/:questionID", questionHandler.Answer, session.RequireExpert)

	// Admin routes
	e.GET("/users", userHandler.ListUsers, session.RequireAdmin)
	e.GET("/promote/:userID", userHandler.Promote, session.RequireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator used by Register; exported for tests.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
