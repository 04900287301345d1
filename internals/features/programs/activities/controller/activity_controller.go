package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/activities/dto"
	"wellness_backend/internals/features/programs/activities/model"
	helper "wellness_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// POST /activities
func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "activity name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create activity")
	}
	return helper.JsonCreated(c, "activity created", m)
}

// GET /activities?active=true&q=
func (ctl *ActivityController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ActivityModel{})
	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true", "1":
		q = q.Where("activity_is_active = TRUE")
	case "false", "0":
		q = q.Where("activity_is_active = FALSE")
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("activity_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count activities")
	}
	var rows []model.ActivityModel
	if err := q.Order("activity_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch activities")
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /activities/:id
func (ctl *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ActivityModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "activity_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", m)
}

// PATCH /activities/:id
func (ctl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.ActivityModel
	if err := db.First(&m, "activity_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "activity name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update activity")
	}
	return helper.JsonUpdated(c, "activity updated", m)
}

// DELETE /activities/:id
func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ActivityModel{}, "activity_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "activity not found")
	}
	return helper.JsonDeleted(c, "activity deleted", fiber.Map{"activity_id": id})
}
