package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/domains/controller"
)

func DomainAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDomainController(db)

	g := api.Group("/domains")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// DomainPublicRoutes exposes the catalog read-only.
func DomainPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDomainController(db)

	g := api.Group("/domains")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
