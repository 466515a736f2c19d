package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as the JSON envelope used by the API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
