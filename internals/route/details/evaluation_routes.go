package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationRoute "wellness_backend/internals/features/evaluations/evaluations/route"
)

func EvaluationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	evaluationRoute.EvaluationAdminRoutes(admin, db)
}
