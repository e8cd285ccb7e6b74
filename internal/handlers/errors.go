package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumentor/internal/repositories"
	"resumentor/internal/services"
)

// serviceError maps service-layer sentinels onto HTTP responses so each
// handler does not repeat the same switch.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "record not found",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "access denied",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "email already registered",
		})
	case errors.Is(err, services.ErrSessionCompleted),
		errors.Is(err, services.ErrSessionExpired),
		errors.Is(err, services.ErrSessionOngoing):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
