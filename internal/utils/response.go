package utils

import (
	"github.com/gofiber/fiber/v2"
)

// FieldError is a machine-readable validation failure for a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// ValidationFailed sends a 400 with per-field details.
func ValidationFailed(c *fiber.Ctx, details []FieldError) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{
		"error":   "Validation error",
		"details": details,
	})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a generic 500. Internals never cross the boundary,
// only the request id for correlation.
func InternalError(c *fiber.Ctx) error {
	rid, _ := c.Locals("requestid").(string)
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{
		"error":      "Internal server error",
		"request_id": rid,
	})
}
