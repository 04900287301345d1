package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/reports/dashboard/service"
	reports "wellness_backend/internals/features/reports/reports/service"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
)

// programEpoch is the start of the default all-time range.
var programEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type DashboardController struct {
	Svc *service.Service
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Svc: service.NewService(reports.NewGormStore(db))}
}

// dashboardRange defaults to everything up to today when no range is given.
func dashboardRange(c *fiber.Ctx) (dbtime.DateRange, error) {
	if strings.TrimSpace(c.Query("start_date")) == "" && strings.TrimSpace(c.Query("end_date")) == "" {
		return dbtime.DateRange{Start: programEpoch, End: dbtime.TodayInProgram()}, nil
	}
	return dbtime.ParseDateRange(c)
}

// GET /dashboard?start_date=&end_date=
func (ctl *DashboardController) Get(c *fiber.Ctx) error {
	rng, err := dashboardRange(c)
	if err != nil {
		return err
	}
	out, err := ctl.Svc.Build(c.UserContext(), rng)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "dashboard", out)
}
