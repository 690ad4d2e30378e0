package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "askhub/internal/errors"
	"askhub/internal/service"
	"askhub/internal/session"
)

// QuestionHandler handles the feed and the question lifecycle pages.
type QuestionHandler struct {
	questionService service.QuestionService
	userService     service.UserService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService, userService service.UserService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		userService:     userService,
	}
}

type askForm struct {
	Question string `form:"question"`
	Expert   string `form:"expert"`
}

type answerForm struct {
	Answer string `form:"answer"`
}

// Feed renders the public list of answered questions.
func (h *QuestionHandler) Feed(c echo.Context) error {
	entries, err := h.questionService.Feed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home.html", page(c, echo.Map{
		"Entries": entries,
	}))
}

// AskForm renders the ask page with the expert picker.
func (h *QuestionHandler) AskForm(c echo.Context) error {
	experts, err := h.userService.ListExperts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "ask.html", page(c, echo.Map{
		"Experts": experts,
	}))
}

// Ask submits a new question. Blank text bounces back to the form without
// creating a record; a target that is not an expert re-renders the form
// with an error.
func (h *QuestionHandler) Ask(c echo.Context) error {
	user := session.CurrentUser(c)

	var form askForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, "/ask")
	}

	expertID, err := uuid.Parse(form.Expert)
	if err != nil {
		return h.renderAskError(c, form.Question, "Choose an expert")
	}

	_, err = h.questionService.Ask(c.Request().Context(), user.ID, expertID, form.Question)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyQuestion):
			return c.Redirect(http.StatusFound, "/ask")
		case errors.Is(err, apperrors.ErrNotAnExpert):
			return h.renderAskError(c, form.Question, "Selected user is not an expert")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Unanswered renders the current expert's open questions.
func (h *QuestionHandler) Unanswered(c echo.Context) error {
	user := session.CurrentUser(c)

	entries, err := h.questionService.UnansweredFor(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "unanswered.html", page(c, echo.Map{
		"Entries": entries,
	}))
}

// AnswerForm renders the answer page for a question assigned to the
// current expert.
func (h *QuestionHandler) AnswerForm(c echo.Context) error {
	user := session.CurrentUser(c)

	questionID, err := uuid.Parse(c.Param("questionID"))
	if err != nil {
		return notFound(c)
	}

	question, err := h.questionService.GetForExpert(c.Request().Context(), questionID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrQuestionNotFound):
			return notFound(c)
		case errors.Is(err, apperrors.ErrNotAssignedExpert):
			return c.Redirect(http.StatusFound, "/unanswered")
		}
		return err
	}
	return c.Render(http.StatusOK, "answer.html", page(c, echo.Map{
		"Question": question,
	}))
}

// Answer writes the answer. The question must be assigned to the current
// expert and still open; a lost race against a concurrent answer lands
// back on the unanswered list, which no longer shows the question.
func (h *QuestionHandler) Answer(c echo.Context) error {
	user := session.CurrentUser(c)

	questionID, err := uuid.Parse(c.Param("questionID"))
	if err != nil {
		return notFound(c)
	}

	var form answerForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, "/unanswered")
	}

	err = h.questionService.Answer(c.Request().Context(), questionID, user.ID, form.Answer)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyAnswer):
			question, getErr := h.questionService.GetForExpert(c.Request().Context(), questionID, user.ID)
			if getErr != nil {
				return c.Redirect(http.StatusFound, "/unanswered")
			}
			return c.Render(http.StatusOK, "answer.html", page(c, echo.Map{
				"Question": question,
				"Error":    "Answer cannot be empty",
			}))
		case errors.Is(err, apperrors.ErrQuestionNotFound):
			return notFound(c)
		case errors.Is(err, apperrors.ErrNotAssignedExpert),
			errors.Is(err, apperrors.ErrAlreadyAnswered):
			return c.Redirect(http.StatusFound, "/unanswered")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/unanswered")
}

// View renders a single question. Anonymous visitors are welcome; unknown
// or malformed identifiers get the 404 page.
func (h *QuestionHandler) View(c echo.Context) error {
	questionID, err := uuid.Parse(c.Param("questionID"))
	if err != nil {
		return notFound(c)
	}

	question, err := h.questionService.Get(c.Request().Context(), questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.Render(http.StatusOK, "question.html", page(c, echo.Map{
		"Question": question,
	}))
}

func (h *QuestionHandler) renderAskError(c echo.Context, questionText, message string) error {
	experts, err := h.userService.ListExperts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "ask.html", page(c, echo.Map{
		"Experts":  experts,
		"Question": questionText,
		"Error":    message,
	}))
}
