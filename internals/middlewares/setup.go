package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/metrics"
	"wellness_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(time.Duration(configs.GetEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second))
	app.Use(metrics.Middleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
