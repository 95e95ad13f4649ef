package handler

import (
	"flag-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Catalog    *CatalogHandler
	Quiz       *QuizHandler
	Learn      *LearnHandler
	Health     *HealthHandler
	Validation *middleware.ValidationMiddleware
}

// RegisterRoutes mounts the JSON API under /api.
func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	v := h.Validation

	api.Get("/health", h.Health.Health)

	catalog := api.Group("/catalog")
	catalog.Get("/regions", h.Catalog.GetRegions)
	catalog.Get("/subregions", h.Catalog.GetSubregions)
	catalog.Get("/pool", h.Catalog.GetPool)

	sessions := api.Group("/sessions")
	sessions.Post("/", v.ValidateStartSession(), h.Quiz.StartSession)
	sessions.Get("/:id", v.ValidateID(), h.Quiz.GetSession)
	sessions.Delete("/:id", v.ValidateID(), h.Quiz.Quit)
	sessions.Post("/:id/choose", v.ValidateID(), v.ValidateChoose(), h.Quiz.Choose)
	sessions.Post("/:id/answer", v.ValidateID(), v.ValidateAnswer(), h.Quiz.Answer)
	sessions.Post("/:id/advance", v.ValidateID(), h.Quiz.Advance)
	sessions.Post("/:id/play-again", v.ValidateID(), h.Quiz.PlayAgain)
	sessions.Get("/:id/summary", v.ValidateID(), h.Quiz.GetSummary)

	learn := api.Group("/learn")
	learn.Post("/", v.ValidateDeck(), h.Learn.StartDeck)
	learn.Get("/:id", v.ValidateID(), h.Learn.GetDeck)
	learn.Delete("/:id", v.ValidateID(), h.Learn.DeleteDeck)
	learn.Post("/:id/next", v.ValidateID(), h.Learn.Next)
	learn.Post("/:id/prev", v.ValidateID(), h.Learn.Prev)
	learn.Put("/:id/filter", v.ValidateID(), v.ValidateDeck(), h.Learn.Filter)
}
