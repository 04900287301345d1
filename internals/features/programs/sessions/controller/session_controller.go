package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/sessions/dto"
	"wellness_backend/internals/features/programs/sessions/service"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
)

type SessionController struct {
	Svc *service.Service
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{Svc: service.NewService(db)}
}

// POST /sessions
func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	session, attendance, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonCreated(c, "session created", dto.FromModel(session, attendance))
}

// GET /sessions?cohort_id=&activity_id=&from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctl *SessionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	cohortID, err := helper.ParseUUIDQuery(c, "cohort_id")
	if err != nil {
		return err
	}
	activityID, err := helper.ParseUUIDQuery(c, "activity_id")
	if err != nil {
		return err
	}
	f := service.ListFilter{CohortID: cohortID, ActivityID: activityID, Limit: p.Limit, Offset: p.Offset}
	if s := c.Query("from"); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid from")
		}
		f.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := dbtime.ParseDate(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid to")
		}
		f.To = &t
	}

	rows, total, err := ctl.Svc.List(c.UserContext(), f)
	if err != nil {
		return helper.ToFiberError(err)
	}
	out := make([]dto.SessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r, nil))
	}
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /sessions/:id
func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	session, attendance, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(session, attendance))
}

// PATCH /sessions/:id
func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	session, attendance, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonUpdated(c, "session updated", dto.FromModel(session, attendance))
}

// DELETE /sessions/:id
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonDeleted(c, "session deleted", fiber.Map{"session_id": id})
}
