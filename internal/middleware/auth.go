// Package middleware provides HTTP middleware components for the
// application, including JWT authentication for the fiber web framework.
package middleware

import (
	"log"
	"strings"

	"finflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the Bearer token and adds the user claims to the request
// context. Every ledger operation downstream reads its user id from these
// claims and nothing else.
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}
