package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/evaluations/evaluations/dto"
	"wellness_backend/internals/features/evaluations/evaluations/service"
	helper "wellness_backend/internals/helpers"
)

type EvaluationController struct {
	Svc *service.Service
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{Svc: service.NewService(db)}
}

// POST /evaluations
func (ctl *EvaluationController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Submit(c.UserContext(), req)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonCreated(c, "evaluation submitted", dto.FromModel(m))
}

// PUT /evaluations/:id
func (ctl *EvaluationController) Edit(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.EditEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Edit(c.UserContext(), id, req)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonUpdated(c, "evaluation updated", dto.FromModel(m))
}

// GET /evaluations/:id
func (ctl *EvaluationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /evaluations?session_id=&participant_id=&cohort_id=
func (ctl *EvaluationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	var (
		f   service.ListFilter
		err error
	)
	if f.CohortID, err = helper.ParseUUIDQuery(c, "cohort_id"); err != nil {
		return err
	}
	if f.SessionID, err = helper.ParseUUIDQuery(c, "session_id"); err != nil {
		return err
	}
	if f.ParticipantID, err = helper.ParseUUIDQuery(c, "participant_id"); err != nil {
		return err
	}
	f.Limit, f.Offset = p.Limit, p.Offset

	rows, total, err := ctl.Svc.List(c.UserContext(), f)
	if err != nil {
		return helper.ToFiberError(err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// DELETE /evaluations/:id
func (ctl *EvaluationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonDeleted(c, "evaluation deleted", fiber.Map{"evaluation_id": id})
}
