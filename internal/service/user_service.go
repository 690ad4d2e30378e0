package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"askhub/internal/cache"
	apperrors "askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/repository"
)

const (
	expertsCacheKey = "users:experts"
	expertsCacheTTL = 5 * time.Minute
)

// UserService exposes user management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListExperts(ctx context.Context) ([]model.User, error)
	Promote(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// ListExperts returns users carrying the expert flag, cached briefly since
// the ask form renders the same list for every visitor.
func (s *userService) ListExperts(ctx context.Context) ([]model.User, error) {
	if data, _ := s.cache.Get(ctx, expertsCacheKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	experts, err := s.users.ListExperts(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(experts); err == nil {
		_ = s.cache.Set(ctx, expertsCacheKey, payload, expertsCacheTTL)
	}
	return experts, nil
}

// Promote grants the expert flag. Idempotent: promoting an expert again is
// a no-op. There is no demotion path.
func (s *userService) Promote(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if user.Expert {
		return nil
	}

	if err := s.users.SetExpert(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, expertsCacheKey)
	return nil
}
