package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/constants"
	"wellness_backend/internals/features/reports/reports/service"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
)

type ReportController struct {
	Svc *service.Service
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Svc: service.NewService(service.NewGormStore(db))}
}

/* =========================
   Query parsing
========================= */

// ParseQuery reads start_date, end_date and participant_type.
func ParseQuery(c *fiber.Ctx) (service.Query, error) {
	rng, err := dbtime.ParseDateRange(c)
	if err != nil {
		return service.Query{}, err
	}
	q := service.Query{Range: rng, ParticipantType: strings.TrimSpace(c.Query("participant_type"))}
	if q.ParticipantType != "" &&
		q.ParticipantType != constants.CategoryGeneral &&
		q.ParticipantType != constants.CategorySpecialNeed {
		return service.Query{}, fiber.NewError(fiber.StatusBadRequest, "participant_type must be General or SpecialNeed")
	}
	return q, nil
}

/* =========================
   Handlers
========================= */

// GET /reports/cohorts/:id?start_date=&end_date=&participant_type=
func (ctl *ReportController) Cohort(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	q, err := ParseQuery(c)
	if err != nil {
		return err
	}
	rep, err := ctl.Svc.CohortReport(c.UserContext(), id, q)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "cohort report", rep)
}

// GET /reports/participants/:id?start_date=&end_date=
func (ctl *ReportController) Participant(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	q, err := ParseQuery(c)
	if err != nil {
		return err
	}
	rep, err := ctl.Svc.ParticipantReport(c.UserContext(), id, q)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "participant report", rep)
}

// GET /reports/comparison?start_date=&end_date=&cohort_ids=a,b&participant_type=
func (ctl *ReportController) Comparison(c *fiber.Ctx) error {
	q, err := ParseQuery(c)
	if err != nil {
		return err
	}
	ids, err := helper.ParseUUIDList(c.Query("cohort_ids"))
	if err != nil {
		return helper.ToFiberError(err)
	}
	rep, err := ctl.Svc.ComparisonReport(c.UserContext(), ids, q)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "comparison report", rep)
}
