package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/evaluations/evaluations/controller"
)

func EvaluationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEvaluationController(db)

	g := api.Group("/evaluations")
	g.Post("/", ctl.Submit)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Edit)
	g.Delete("/:id", ctl.Delete)
}
