package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/features/programs/domains/dto"
	"wellness_backend/internals/features/programs/domains/model"
	helper "wellness_backend/internals/helpers"
)

type DomainController struct {
	DB *gorm.DB
}

func NewDomainController(db *gorm.DB) *DomainController {
	return &DomainController{DB: db}
}

/* =========================
   Create
========================= */

func (ctl *DomainController) Create(c *fiber.Ctx) error {
	var req dto.CreateDomainRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "domain name already exists")
		}
		configs.Log.WithError(err).Error("create domain")
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create domain")
	}
	return helper.JsonCreated(c, "domain created", dto.FromModel(m))
}

/* =========================
   List
   GET /domains?category=General&q=creat&page=1&per_page=50
========================= */

func (ctl *DomainController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.DomainModel{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("domain_category = ?", cat)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("domain_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count domains")
	}

	var rows []model.DomainModel
	if err := q.Order("domain_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch domains")
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

/* =========================
   Get
========================= */

func (ctl *DomainController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.DomainModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "domain_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* =========================
   Update (partial)
========================= */

func (ctl *DomainController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateDomainRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.DomainModel
	if err := db.First(&m, "domain_id = ?", id).Error; err != nil {
		return helper.ToFiberError(err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "domain name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update domain")
	}
	return helper.JsonUpdated(c, "domain updated", dto.FromModel(m))
}

/* =========================
   Delete (soft)
========================= */

func (ctl *DomainController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.DomainModel{}, "domain_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete domain")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "domain not found")
	}
	return helper.JsonDeleted(c, "domain deleted", fiber.Map{"domain_id": id})
}
