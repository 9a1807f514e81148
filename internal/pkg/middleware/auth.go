package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

// RequireAuth ensures a signed-in web session
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).SendString("Please sign in to continue")
	}
	return c.Next()
}

// RequireAPISessionAuth ensures a signed-in session for API routes and returns JSON 401 instead.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
