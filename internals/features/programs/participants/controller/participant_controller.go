package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	"wellness_backend/internals/features/programs/participants/dto"
	"wellness_backend/internals/features/programs/participants/model"
	helper "wellness_backend/internals/helpers"
)

type ParticipantController struct {
	DB *gorm.DB
}

func NewParticipantController(db *gorm.DB) *ParticipantController {
	return &ParticipantController{DB: db}
}

func (ctl *ParticipantController) cohortExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&cohortModel.CohortModel{}).Where("cohort_id = ?", id).Count(&n).Error
	return n > 0, err
}

/* =========================
   Create
========================= */

func (ctl *ParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	ok, err := ctl.cohortExists(db, req.ParticipantCohortID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check cohort")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "cohort not found")
	}

	m := req.ToModel()
	if err := db.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create participant")
	}
	return helper.JsonCreated(c, "participant created", dto.FromModel(m))
}

/* =========================
   List
   GET /participants?cohort_id=&participant_type=&gender=&q=
========================= */

func (ctl *ParticipantController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	cohortID, err := helper.ParseUUIDQuery(c, "cohort_id")
	if err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ParticipantModel{})
	if cohortID != nil {
		q = q.Where("participant_cohort_id = ?", *cohortID)
	}
	if pt := strings.TrimSpace(c.Query("participant_type")); pt != "" {
		q = q.Where("participant_type = ?", pt)
	}
	if g := strings.TrimSpace(c.Query("gender")); g != "" {
		q = q.Where("participant_gender = ?", g)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("participant_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count participants")
	}
	var rows []model.ParticipantModel
	if err := q.Order("participant_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch participants")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

/* =========================
   Get
========================= */

func (ctl *ParticipantController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ParticipantModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "participant_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* =========================
   Update
========================= */

func (ctl *ParticipantController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	if req.ParticipantCohortID != nil {
		ok, err := ctl.cohortExists(db, *req.ParticipantCohortID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check cohort")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "cohort not found")
		}
	}

	var m model.ParticipantModel
	if err := db.First(&m, "participant_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update participant")
	}
	return helper.JsonUpdated(c, "participant updated", dto.FromModel(m))
}

/* =========================
   Delete (soft; history stays)
========================= */

func (ctl *ParticipantController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ParticipantModel{}, "participant_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete participant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "participant not found")
	}
	return helper.JsonDeleted(c, "participant deleted", fiber.Map{"participant_id": id})
}
