package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/participants/controller"
)

func ParticipantAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewParticipantController(db)

	g := api.Group("/participants")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
