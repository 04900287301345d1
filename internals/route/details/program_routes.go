package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "wellness_backend/internals/features/programs/activities/route"
	cohortRoute "wellness_backend/internals/features/programs/cohorts/route"
	domainRoute "wellness_backend/internals/features/programs/domains/route"
	participantRoute "wellness_backend/internals/features/programs/participants/route"
	sessionRoute "wellness_backend/internals/features/programs/sessions/route"
)

// ProgramPublicRoutes exposes the read-only domain catalog.
func ProgramPublicRoutes(public fiber.Router, db *gorm.DB) {
	domainRoute.DomainPublicRoutes(public, db)
}

func ProgramAdminRoutes(admin fiber.Router, db *gorm.DB) {
	domainRoute.DomainAdminRoutes(admin, db)
	cohortRoute.CohortAdminRoutes(admin, db)
	participantRoute.ParticipantAdminRoutes(admin, db)
	activityRoute.ActivityAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)
}
