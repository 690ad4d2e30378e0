package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"askhub/internal/cache"
	"askhub/internal/config"
	"askhub/internal/db"
	"askhub/internal/handler"
	"askhub/internal/model"
	"askhub/internal/repository"
	"askhub/internal/router"
	"askhub/internal/service"
	"askhub/internal/session"
	"askhub/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Question{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable, sessions will not persist: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	// Initialize sessions
	tokens := session.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := session.NewStore(cacheClient)
	sessions := session.NewManager(tokens, sessionStore, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, cacheClient)
	questionService := service.NewQuestionService(questionRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService, userService)

	// Register routes
	router.Register(
		e,
		sessions,
		authHandler,
		userHandler,
		questionHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
