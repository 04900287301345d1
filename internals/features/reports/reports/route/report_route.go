package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/reports/reports/controller"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	g := api.Group("/reports")
	g.Get("/cohorts/:id", ctl.Cohort)
	g.Get("/participants/:id", ctl.Participant)
	g.Get("/comparison", ctl.Comparison)
}
