package middleware

import (
	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys holding validated request data for handlers.
const (
	LocalID            = "validated_id"
	LocalStartSession  = "validated_start_session"
	LocalChooseRequest = "validated_choose"
	LocalAnswerRequest = "validated_answer"
	LocalDeckRequest   = "validated_deck"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(maxCount int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(maxCount),
	}
}

// ValidateID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateID(id); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalID, id)
		return c.Next()
	}
}

func (vm *ValidationMiddleware) ValidateStartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.StartSessionRequest)
		if err := parseBody(c, req); err != nil {
			return err
		}
		if errors := vm.validator.ValidateStartSessionRequest(req); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalStartSession, req)
		return c.Next()
	}
}

func (vm *ValidationMiddleware) ValidateChoose() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.ChooseRequest)
		if err := parseBody(c, req); err != nil {
			return err
		}
		if errors := vm.validator.ValidateChooseRequest(req); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalChooseRequest, req)
		return c.Next()
	}
}

func (vm *ValidationMiddleware) ValidateAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.AnswerRequest)
		if err := parseBody(c, req); err != nil {
			return err
		}
		if errors := vm.validator.ValidateAnswerRequest(req); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalAnswerRequest, req)
		return c.Next()
	}
}

func (vm *ValidationMiddleware) ValidateDeck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.StartDeckRequest)
		if err := parseBody(c, req); err != nil {
			return err
		}
		if errors := vm.validator.ValidateDeckRequest(req); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalDeckRequest, req)
		return c.Next()
	}
}

// parseBody decodes a JSON body. An empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	return nil
}
