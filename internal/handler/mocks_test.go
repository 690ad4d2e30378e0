package handler_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"askhub/internal/model"
	"askhub/internal/service"
	"askhub/internal/session"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, password string) (*model.User, error) {
	args := m.Called(ctx, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, name, password string) (*model.User, error) {
	args := m.Called(ctx, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) ListExperts(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Promote(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuestionService is a mock implementation of service.QuestionService.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Ask(ctx context.Context, askerID, expertID uuid.UUID, text string) (*model.Question, error) {
	args := m.Called(ctx, askerID, expertID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) Feed(ctx context.Context) ([]service.QuestionEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.QuestionEntry), args.Error(1)
}

func (m *MockQuestionService) UnansweredFor(ctx context.Context, expertID uuid.UUID) ([]service.QuestionEntry, error) {
	args := m.Called(ctx, expertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.QuestionEntry), args.Error(1)
}

func (m *MockQuestionService) Answer(ctx context.Context, questionID, expertID uuid.UUID, text string) error {
	args := m.Called(ctx, questionID, expertID, text)
	return args.Error(0)
}

func (m *MockQuestionService) Get(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) GetForExpert(ctx context.Context, questionID, expertID uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, questionID, expertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

// memStore is an in-memory session.StoreInterface for handler tests.
type memStore struct {
	recs map[string]session.Record
}

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]session.Record)}
}

func (s *memStore) Save(ctx context.Context, sessionID string, rec session.Record, ttl time.Duration) error {
	s.recs[sessionID] = rec
	return nil
}

func (s *memStore) Get(ctx context.Context, sessionID string) (*session.Record, error) {
	rec, ok := s.recs[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return &rec, nil
}

func (s *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.recs, sessionID)
	return nil
}
