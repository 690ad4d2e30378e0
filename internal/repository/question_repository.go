package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"askhub/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	ListAnswered(ctx context.Context) ([]model.Question, error)
	ListUnansweredForExpert(ctx context.Context, expertID uuid.UUID) ([]model.Question, error)
	// Answer sets the answer text only if the question is still unanswered.
	// Returns false when the question was already answered (or does not
	// exist), so concurrent answers cannot overwrite each other.
	Answer(ctx context.Context, id uuid.UUID, answerText string) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) ListAnswered(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).
		Where("answer_text <> ''").
		Order("updated_at DESC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListUnansweredForExpert(ctx context.Context, expertID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).
		Where("answer_text = '' AND expert_id = ?", expertID).
		Order("created_at").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Answer(ctx context.Context, id uuid.UUID, answerText string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ? AND answer_text = ''", id).
		Update("answer_text", answerText)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
