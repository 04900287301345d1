package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/activities/controller"
)

func ActivityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewActivityController(db)

	g := api.Group("/activities")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
