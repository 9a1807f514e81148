package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/sidebar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/theme"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint          `json:"user_id"`
	IsLoggedIn bool          `json:"is_logged_in"`
	Theme      theme.State   `json:"theme"`
	Sidebar    sidebar.State `json:"sidebar"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(LocalsKey).(UserContext); ok {
		return ctx
	}
	return UserContext{Theme: theme.State{Theme: theme.Default}}
}

// SetUserContext stores the user context for the rest of the request
func SetUserContext(c *fiber.Ctx, ctx UserContext) {
	c.Locals(LocalsKey, ctx)
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}
