package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/QuestBoard/app/controllers"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/middleware"
)

type ApiRouter struct {
	quests *controllers.QuestController
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1", middleware.RequireAPISessionAuth)
	v1.Get("/quests/:uuid/calendar", h.quests.HandleAPIQuestCalendar)
}

func NewApiRouter(quests *controllers.QuestController) *ApiRouter {
	return &ApiRouter{quests: quests}
}
