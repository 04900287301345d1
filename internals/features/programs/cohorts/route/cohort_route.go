package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/cohorts/controller"
)

func CohortAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCohortController(db)

	g := api.Group("/cohorts")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/participants", ctl.ListMembers)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
