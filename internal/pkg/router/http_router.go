package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/app/controllers"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/middleware"
)

type HttpRouter struct {
	cfg    env.Config
	quests *controllers.QuestController
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContext(h.cfg))

	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(cfg env.Config, quests *controllers.QuestController) *HttpRouter {
	return &HttpRouter{cfg: cfg, quests: quests}
}
