package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/QuestBoard/app/repository"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/cache"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/checkin"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/database"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/metrics"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/router"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/scheduler"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/session"
	"github.com/ManuelReschke/QuestBoard/views"
)

func main() {
	env.SetupEnvFile()
	cfg, err := env.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	app, sched := NewApplication(cfg)
	sched.Start()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down...")
		sched.Stop()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Shutdown failed: %v", err)
		}
	}()

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}

func NewApplication(cfg env.Config) (*fiber.App, *scheduler.QuestScheduler) {
	db := database.SetupDatabase(cfg)
	redisClient := cache.SetupCache(cfg)
	session.NewSessionStore(session.NewRedisStorage(cfg))
	metrics.Register()

	repository.InitializeFactory(db)
	repos := repository.GetGlobalFactory().GetRepositories()
	checkIns := checkin.NewService(repos.Quest, repos.CheckIn, cache.NewCheckInCache(redisClient, cfg.CheckInCacheTTL))

	// init fiber app
	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber and prometheus metrics
	metricsAuth := basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.MetricsUser: cfg.MetricsPassword,
		},
	})
	app.Get("/metrics", metricsAuth, monitor.New())
	app.Get("/metrics/prometheus", metricsAuth, metrics.Handler())

	// static files
	app.Static("/", resolveBasePath()+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// ROUTER
	router.InstallRouter(app, router.Dependencies{
		Config:       cfg,
		Repositories: *repos,
		CheckIns:     checkIns,
	})

	return app, scheduler.NewQuestScheduler(checkIns, cfg.QuestExpiryInterval)
}

// resolveBasePath finds the project root so the binary runs from the repo
// root and from cmd/questboard alike
func resolveBasePath() string {
	basePaths := []string{
		"./",     // Current directory
		"../../", // From cmd/questboard to project root
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			return path
		}
	}
	return "./"
}
