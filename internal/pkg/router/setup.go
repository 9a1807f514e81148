package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuestBoard/app/controllers"
	"github.com/ManuelReschke/QuestBoard/app/repository"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/checkin"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
)

// Router installs a group of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the services the routes hand to their controllers
type Dependencies struct {
	Config       env.Config
	Repositories repository.Repositories
	CheckIns     *checkin.Service
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// HttpRouter installs the global UserContext middleware, so it has to go
	// before the API routes which depend on it.
	quests := controllers.NewQuestController(deps.Repositories.Quest, deps.CheckIns)
	setup(app, NewHttpRouter(deps.Config, quests), NewApiRouter(quests))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
