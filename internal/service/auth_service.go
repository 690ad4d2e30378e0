package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"askhub/internal/model"
	"askhub/internal/repository"
)

const bcryptCost = 10

var (
	// ErrNameTaken is returned when registering a name that already exists.
	ErrNameTaken = errors.New("user already registered")
	// ErrUnknownName is returned when logging in with a name that does not exist.
	ErrUnknownName = errors.New("user not found")
	// ErrWrongPassword is returned when the password does not match the stored digest.
	ErrWrongPassword = errors.New("invalid password")
)

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, name, password string) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates an authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user with a hashed password. Both role flags
// start false; admin status only ever comes from the bootstrap seeder.
func (s *authService) Register(ctx context.Context, name, password string) (*model.User, error) {
	existing, err := s.users.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials. Unknown name and wrong password surface as
// distinct errors; nothing beyond those messages is revealed.
func (s *authService) Login(ctx context.Context, name, password string) (*model.User, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnknownName
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return user, nil
}
