package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is asked by one user and addressed to one expert. An empty
// AnswerText means the question is still open; answering is the only
// mutation and it happens at most once.
type Question struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	QuestionText string    `json:"question_text" gorm:"type:text;not null"`
	AnswerText   string    `json:"answer_text" gorm:"type:text;not null"`
	AskedByID    uuid.UUID `json:"asked_by_id" gorm:"type:char(36);not null;index"`
	ExpertID     uuid.UUID `json:"expert_id" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// Answered reports whether the question has received its answer.
func (q *Question) Answered() bool {
	return q.AnswerText != ""
}
