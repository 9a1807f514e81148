package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/session"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/sidebar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/usercontext"
)

// sidebarForm is the body of POST /ui/sidebar
type sidebarForm struct {
	Event string `form:"event"`
	Key   string `form:"key"`
	Width string `form:"width"`
}

// HandleSidebarEvent applies one sidebar event to the session state. HTMX
// callers get the re-rendered sidebar shell, other callers the classes as JSON.
func HandleSidebarEvent(c *fiber.Ctx) error {
	var form sidebarForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid sidebar event"})
	}

	event, err := sidebar.ParseEvent(form.Event, form.Key, form.Width)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}

	userCtx := usercontext.GetUserContext(c)
	bus := sidebar.NewBus(userCtx.Sidebar)
	bus.SubscribeAll(func(e sidebar.Event, next sidebar.State) {
		if err := session.SaveSidebar(c, next); err != nil {
			log.Warnf("[Sidebar] Could not persist state after %s: %v", e.Kind, err)
		}
	})
	next := bus.Dispatch(event)

	userCtx.Sidebar = next
	usercontext.SetUserContext(c, userCtx)

	if isHTMX(c) {
		return c.Render("partials/sidebar", fiber.Map{
			"Layout": newLayout(c, ""),
		})
	}
	return c.JSON(fiber.Map{
		"open":          next.Open,
		"scroll_locked": next.ScrollLocked(),
		"sidebar_class": next.SidebarClass(),
		"overlay_class": next.OverlayClass(),
	})
}
