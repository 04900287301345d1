package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/reports/snapshots/dto"
	"wellness_backend/internals/features/reports/snapshots/service"
	helper "wellness_backend/internals/helpers"
)

type SnapshotController struct {
	Svc *service.Service
}

func NewSnapshotController(db *gorm.DB) *SnapshotController {
	return &SnapshotController{Svc: service.NewService(db)}
}

// POST /report-snapshots
func (ctl *SnapshotController) Create(c *fiber.Ctx) error {
	var req dto.CreateSnapshotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonCreated(c, "report snapshot created", dto.FromModel(m))
}

// GET /report-snapshots?kind=&subject_id=
func (ctl *SnapshotController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	subjectID, err := helper.ParseUUIDQuery(c, "subject_id")
	if err != nil {
		return err
	}
	f := service.ListFilter{
		Kind:      strings.TrimSpace(c.Query("kind")),
		SubjectID: subjectID,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
	rows, total, err := ctl.Svc.List(c.UserContext(), f)
	if err != nil {
		return helper.ToFiberError(err)
	}
	out := dto.SummariesFromModels(rows)
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

// GET /report-snapshots/:id
func (ctl *SnapshotController) GetByID(c *fiber.Ctx) error {
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

// DELETE /report-snapshots/:id
func (ctl *SnapshotController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonDeleted(c, "report snapshot deleted", fiber.Map{"report_snapshot_id": id})
}
