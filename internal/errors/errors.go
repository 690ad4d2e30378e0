package errors

import "errors"

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuestionNotFound is returned when a referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNotAnExpert is returned when a question targets a user without the expert flag.
	ErrNotAnExpert = errors.New("selected user is not an expert")
	// ErrNotAssignedExpert is returned when someone other than the assigned expert tries to answer.
	ErrNotAssignedExpert = errors.New("question is assigned to another expert")
	// ErrAlreadyAnswered is returned when the question has already received its answer.
	ErrAlreadyAnswered = errors.New("question is already answered")
	// ErrEmptyQuestion is returned when the submitted question text is blank.
	ErrEmptyQuestion = errors.New("question text is empty")
	// ErrEmptyAnswer is returned when the submitted answer text is blank.
	ErrEmptyAnswer = errors.New("answer text is empty")
)
