package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "wellness_backend/internals/features/reports/dashboard/route"
	reportRoute "wellness_backend/internals/features/reports/reports/route"
	snapshotRoute "wellness_backend/internals/features/reports/snapshots/route"
	"wellness_backend/internals/middlewares"
)

// ReportAdminRoutes mounts report builders behind one shared, stricter limiter.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	limiter := middlewares.ReportRateLimiter()
	for _, prefix := range []string{"/reports", "/dashboard", "/report-snapshots"} {
		admin.Use(prefix, limiter)
	}
	reportRoute.ReportAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	snapshotRoute.SnapshotAdminRoutes(admin, db)
}
