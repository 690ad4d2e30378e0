package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/repository"
)

// unknownName is rendered when a question references a user record that no
// longer resolves. Listings must never fail on a dangling reference.
const unknownName = "Unknown"

// QuestionEntry is a question joined with display names for rendering.
type QuestionEntry struct {
	ID       uuid.UUID
	Question string
	Answer   string
	AskedBy  string
	Expert   string
}

// QuestionService exposes the question lifecycle: ask, list, answer, view.
type QuestionService interface {
	Ask(ctx context.Context, askerID, expertID uuid.UUID, text string) (*model.Question, error)
	Feed(ctx context.Context) ([]QuestionEntry, error)
	UnansweredFor(ctx context.Context, expertID uuid.UUID) ([]QuestionEntry, error)
	Answer(ctx context.Context, questionID, expertID uuid.UUID, text string) error
	Get(ctx context.Context, id uuid.UUID) (*model.Question, error)
	GetForExpert(ctx context.Context, questionID, expertID uuid.UUID) (*model.Question, error)
}

type questionService struct {
	questions repository.QuestionRepository
	users     repository.UserRepository
}

// NewQuestionService creates a question service.
func NewQuestionService(questions repository.QuestionRepository, users repository.UserRepository) QuestionService {
	return &questionService{
		questions: questions,
		users:     users,
	}
}

// Ask creates an unanswered question from asker to expert. The expert
// reference is validated against the store before commit: the target must
// exist and carry the expert flag.
func (s *questionService) Ask(ctx context.Context, askerID, expertID uuid.UUID, text string) (*model.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrEmptyQuestion
	}

	target, err := s.users.FindByID(ctx, expertID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotAnExpert
		}
		return nil, err
	}
	if !target.Expert {
		return nil, apperrors.ErrNotAnExpert
	}

	question := &model.Question{
		QuestionText: text,
		AskedByID:    askerID,
		ExpertID:     expertID,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Feed lists all answered questions with asker and expert display names.
func (s *questionService) Feed(ctx context.Context) ([]QuestionEntry, error) {
	questions, err := s.questions.ListAnswered(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string)
	entries := make([]QuestionEntry, 0, len(questions))
	for _, q := range questions {
		entries = append(entries, QuestionEntry{
			ID:       q.ID,
			Question: q.QuestionText,
			Answer:   q.AnswerText,
			AskedBy:  s.displayName(ctx, names, q.AskedByID),
			Expert:   s.displayName(ctx, names, q.ExpertID),
		})
	}
	return entries, nil
}

// UnansweredFor lists the open questions assigned to the given expert.
func (s *questionService) UnansweredFor(ctx context.Context, expertID uuid.UUID) ([]QuestionEntry, error) {
	questions, err := s.questions.ListUnansweredForExpert(ctx, expertID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string)
	entries := make([]QuestionEntry, 0, len(questions))
	for _, q := range questions {
		entries = append(entries, QuestionEntry{
			ID:       q.ID,
			Question: q.QuestionText,
			AskedBy:  s.displayName(ctx, names, q.AskedByID),
		})
	}
	return entries, nil
}

// Answer writes the answer text onto the question. Only the assigned
// expert may answer, and only while the question is still open; the write
// itself is conditional so a concurrent answer loses cleanly instead of
// overwriting.
func (s *questionService) Answer(ctx context.Context, questionID, expertID uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.ErrEmptyAnswer
	}

	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrQuestionNotFound
		}
		return err
	}
	if question.ExpertID != expertID {
		return apperrors.ErrNotAssignedExpert
	}

	updated, err := s.questions.Answer(ctx, questionID, text)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrAlreadyAnswered
	}
	return nil
}

// Get returns a question by ID for public viewing.
func (s *questionService) Get(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// GetForExpert returns a question only if it is assigned to the given
// expert. Backs the answer form.
func (s *questionService) GetForExpert(ctx context.Context, questionID, expertID uuid.UUID) (*model.Question, error) {
	question, err := s.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.ExpertID != expertID {
		return nil, apperrors.ErrNotAssignedExpert
	}
	return question, nil
}

func (s *questionService) displayName(ctx context.Context, memo map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := memo[id]; ok {
		return name
	}
	name := unknownName
	if user, err := s.users.FindByID(ctx, id); err == nil {
		name = user.Name
	}
	memo[id] = name
	return name
}
