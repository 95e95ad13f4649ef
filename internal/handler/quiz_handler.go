package handler

import (
	"flag-quiz/internal/dto"
	"flag-quiz/internal/middleware"
	"flag-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz session requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Filters the catalog, builds the question list and returns the first question
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest false "Session settings"
// @Success 201 {object} domain.SessionView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalStartSession).(*dto.StartSessionRequest)
	view, err := h.service.Start(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession godoc
// @Summary Get the current screen of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Choose godoc
// @Summary Pick the target country of a nameToFlag question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ChooseRequest true "Country code or name"
// @Success 200 {object} domain.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/choose [post]
func (h *QuizHandler) Choose(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalChooseRequest).(*dto.ChooseRequest)
	view, err := h.service.Choose(c.Context(), sessionID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Answer godoc
// @Summary Answer the current question
// @Description Selection is an option key, text a typed country name
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.AnswerRequest true "Answer"
// @Success 200 {object} domain.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answer [post]
func (h *QuizHandler) Answer(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalAnswerRequest).(*dto.AnswerRequest)
	view, err := h.service.Answer(c.Context(), sessionID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Advance godoc
// @Summary Move to the next question or the summary
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionView
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *QuizHandler) Advance(c *fiber.Ctx) error {
	view, err := h.service.Advance(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// PlayAgain godoc
// @Summary Restart a finished session with the same settings
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionView
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/play-again [post]
func (h *QuizHandler) PlayAgain(c *fiber.Ctx) error {
	view, err := h.service.PlayAgain(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// GetSummary godoc
// @Summary Score and review records of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SummaryView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/summary [get]
func (h *QuizHandler) GetSummary(c *fiber.Ctx) error {
	view, err := h.service.Summary(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Quit godoc
// @Summary Quit a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *QuizHandler) Quit(c *fiber.Ctx) error {
	if err := h.service.Quit(c.Context(), sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalID).(string); ok {
		return id
	}
	return c.Params("id")
}
