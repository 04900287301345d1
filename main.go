package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"wellness_backend/internals/configs"
	database "wellness_backend/internals/databases"
	"wellness_backend/internals/features/reports/snapshots/scheduler"
	helper "wellness_backend/internals/helpers"
	middlewares "wellness_backend/internals/middlewares"
	routes "wellness_backend/internals/route"
	"wellness_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.AutoMigrate {
		if err := database.Migrate(database.DB); err != nil {
			configs.Log.Fatalf("auto-migrate failed: %v", err)
		}
	}
	if configs.RunSeeds {
		seeds.RunAllSeeds(database.DB)
	}

	// scheduler after DB is ready
	purge, err := scheduler.StartSnapshotPurgeCron(database.DB)
	if err != nil {
		configs.Log.Fatalf("snapshot purge schedule: %v", err)
	}

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		configs.Log.Infof("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			configs.Log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop accepting, let the purge finish, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	configs.Log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	select {
	case <-purge.Stop().Done():
	case <-ctx.Done():
	}
	database.Close()
}
