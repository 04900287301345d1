package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/reports/dashboard/controller"
)

func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	api.Get("/dashboard", ctl.Get)
}
