package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/middlewares"
	routeDetails "wellness_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===================== PUBLIC =====================
	configs.Log.Info("setting up PUBLIC group...")
	public := api.Group("/public")
	routeDetails.ProgramPublicRoutes(public, db)

	// ===================== ADMIN =====================
	configs.Log.Info("setting up ADMIN group...")
	admin := api.Group("/a")
	routeDetails.ProgramAdminRoutes(admin, db)
	routeDetails.EvaluationAdminRoutes(admin, db)
	routeDetails.ReportAdminRoutes(admin, db)
}
