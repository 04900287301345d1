package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/cohorts/dto"
	"wellness_backend/internals/features/programs/cohorts/model"
	participantDTO "wellness_backend/internals/features/programs/participants/dto"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	helper "wellness_backend/internals/helpers"
)

type CohortController struct {
	DB *gorm.DB
}

func NewCohortController(db *gorm.DB) *CohortController {
	return &CohortController{DB: db}
}

/* =========================
   Create
========================= */

func (ctl *CohortController) Create(c *fiber.Ctx) error {
	var req dto.CreateCohortRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "cohort name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create cohort")
	}
	return helper.JsonCreated(c, "cohort created", dto.FromModel(m))
}

/* =========================
   List (with member counts)
========================= */

func (ctl *CohortController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.UserContext())

	q := db.Model(&model.CohortModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("cohort_name ILIKE ? OR cohort_center ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count cohorts")
	}
	var rows []model.CohortModel
	if err := q.Order("cohort_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch cohorts")
	}

	counts := map[string]int64{}
	if len(rows) > 0 {
		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.CohortID.String())
		}
		type countRow struct {
			CohortID string
			N        int64
		}
		var cr []countRow
		if err := db.Model(&participantModel.ParticipantModel{}).
			Select("participant_cohort_id AS cohort_id, COUNT(*) AS n").
			Where("participant_cohort_id IN ?", ids).
			Group("participant_cohort_id").
			Scan(&cr).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count participants")
		}
		for _, r := range cr {
			counts[r.CohortID] = r.N
		}
	}

	out := make([]dto.CohortResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.FromModel(r)
		n := counts[r.CohortID.String()]
		item.ParticipantCount = &n
		out = append(out, item)
	}
	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "ok", out, &pg)
}

/* =========================
   Get / Members
========================= */

func (ctl *CohortController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CohortModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "cohort_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /cohorts/:id/participants?participant_type=SpecialNeed
func (ctl *CohortController) ListMembers(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var exists int64
	if err := db.Model(&model.CohortModel{}).Where("cohort_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch cohort")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "cohort not found")
	}

	q := db.Where("participant_cohort_id = ?", id)
	if pt := strings.TrimSpace(c.Query("participant_type")); pt != "" {
		q = q.Where("participant_type = ?", pt)
	}
	var members []participantModel.ParticipantModel
	if err := q.Order("participant_name ASC").Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch participants")
	}
	return helper.JsonList(c, "ok", participantDTO.FromModels(members), nil)
}

/* =========================
   Update / Delete
========================= */

func (ctl *CohortController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCohortRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.CohortModel
	if err := db.First(&m, "cohort_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "cohort name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update cohort")
	}
	return helper.JsonUpdated(c, "cohort updated", dto.FromModel(m))
}

// Delete refuses while participants still belong to the cohort.
func (ctl *CohortController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var members int64
	if err := db.Model(&participantModel.ParticipantModel{}).
		Where("participant_cohort_id = ?", id).
		Count(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check participants")
	}
	if members > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "cohort still has participants")
	}

	res := db.Delete(&model.CohortModel{}, "cohort_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete cohort")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "cohort not found")
	}
	return helper.JsonDeleted(c, "cohort deleted", fiber.Map{"cohort_id": id})
}
