package handlers

import (
	"errors"

	"contactlog/internal/repositories"
	"contactlog/internal/services"
	"contactlog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// writeError maps a service error onto its HTTP status and structured
// payload. Every error leaving a handler goes through here, so no internal
// error message reaches a client uncategorized.
func writeError(c *fiber.Ctx, err error) error {
	var recordErr *validation.RecordError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &recordErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": recordErr.Error(),
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": conflictErr.Error(),
		})
	case errors.Is(err, services.ErrBadID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformatted id",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid username or password",
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	case errors.Is(err, repositories.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "service unavailable",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

// writeBadBody reports an unparseable request body.
func writeBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body",
	})
}
