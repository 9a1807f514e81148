package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/constants"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/session"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/theme"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

// HandleThemeToggle flips the stored theme. HTMX callers get the re-rendered
// toggle button plus a themeChanged event, everyone else is redirected back.
func HandleThemeToggle(c *fiber.Ctx) error {
	next, err := theme.ToggleStored(session.ThemeStore(c))
	if err != nil {
		log.Errorf("[Theme] Could not persist theme: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not change theme")
	}

	userCtx := usercontext.GetUserContext(c)
	userCtx.Theme = next
	usercontext.SetUserContext(c, userCtx)

	if !isHTMX(c) {
		return redirectBack(c, constants.DashboardRoute)
	}

	trigger, err := json.Marshal(fiber.Map{
		"themeChanged": fiber.Map{"theme": string(next.Theme)},
	})
	if err != nil {
		return err
	}
	c.Set("HX-Trigger", string(trigger))
	return c.Render("partials/theme_toggle", fiber.Map{
		"Layout": newLayout(c, ""),
	})
}
