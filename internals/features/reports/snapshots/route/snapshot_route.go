package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/reports/snapshots/controller"
)

func SnapshotAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSnapshotController(db)

	g := api.Group("/report-snapshots")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)
}
