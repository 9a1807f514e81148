package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// newLayout builds the shared layout data from the request's user context
func newLayout(c *fiber.Ctx, title string) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)
	layout := viewmodel.NewLayout(c.Path(), title, userCtx.Theme, userCtx.Sidebar)
	layout.IsLoggedIn = userCtx.IsLoggedIn
	layout.Msg = flash.Get(c)
	if token, ok := c.Locals("csrf").(string); ok {
		layout.CSRF = token
	}
	return layout
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// redirectBack sends the browser back to the referring page, or to fallback
func redirectBack(c *fiber.Ctx, fallback string) error {
	return c.RedirectBack(fallback, fiber.StatusSeeOther)
}

func flashError(c *fiber.Ctx, message string) *fiber.Ctx {
	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	})
}

func flashSuccess(c *fiber.Ctx, message string) *fiber.Ctx {
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": message,
	})
}
