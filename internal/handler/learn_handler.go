package handler

import (
	"flag-quiz/internal/dto"
	"flag-quiz/internal/middleware"
	"flag-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LearnHandler serves flashcard decks.
type LearnHandler struct {
	service service.LearnService
}

func NewLearnHandler(service service.LearnService) *LearnHandler {
	return &LearnHandler{service: service}
}

// StartDeck godoc
// @Summary Open a learn deck
// @Description An empty filter result is not an error; the deck reports its empty state
// @Tags learn
// @Accept json
// @Produce json
// @Param request body dto.StartDeckRequest false "Filter"
// @Success 201 {object} domain.DeckView
// @Router /learn [post]
func (h *LearnHandler) StartDeck(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalDeckRequest).(*dto.StartDeckRequest)
	view, err := h.service.Start(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetDeck godoc
// @Summary Current card of a deck
// @Tags learn
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} domain.DeckView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /learn/{id} [get]
func (h *LearnHandler) GetDeck(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Next godoc
// @Summary Next card (wraps around)
// @Tags learn
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} domain.DeckView
// @Router /learn/{id}/next [post]
func (h *LearnHandler) Next(c *fiber.Ctx) error {
	view, err := h.service.Next(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Prev godoc
// @Summary Previous card (wraps around)
// @Tags learn
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} domain.DeckView
// @Router /learn/{id}/prev [post]
func (h *LearnHandler) Prev(c *fiber.Ctx) error {
	view, err := h.service.Prev(c.Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Filter godoc
// @Summary Change the filter of a deck
// @Description Reshuffles the new pool and resets the pointer
// @Tags learn
// @Accept json
// @Produce json
// @Param id path string true "Deck ID"
// @Param request body dto.StartDeckRequest true "Filter"
// @Success 200 {object} domain.DeckView
// @Router /learn/{id}/filter [put]
func (h *LearnHandler) Filter(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalDeckRequest).(*dto.StartDeckRequest)
	view, err := h.service.Filter(c.Context(), sessionID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// DeleteDeck godoc
// @Summary Close a deck
// @Tags learn
// @Param id path string true "Deck ID"
// @Success 204
// @Router /learn/{id} [delete]
func (h *LearnHandler) DeleteDeck(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
