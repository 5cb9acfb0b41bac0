// file: internals/features/crm/leads/controller/lead_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/crmerr"
	"salespipe_backend/internals/features/crm/leads/dto"
	"salespipe_backend/internals/features/crm/leads/model"
	"salespipe_backend/internals/features/crm/leads/service"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

// POST /leads
func (ctl *LeadController) Create(c *fiber.Ctx) error {
	var in dto.LeadCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	lead, dealCreated, err := service.Create(ctl.DB, in)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "lead created", dto.LeadUpdateResponse{
		Lead:        dto.ToLeadResponse(*lead),
		DealCreated: dealCreated,
	})
}

// GET /leads/:id
func (ctl *LeadController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Lead
	if err := ctl.DB.First(&m, "lead_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "lead not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", dto.ToLeadResponse(m))
}

// GET /leads?status=&customer_id=
func (ctl *LeadController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Lead{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("lead_status = ?", status)
	}
	if cid := c.QueryInt("customer_id"); cid > 0 {
		q = q.Where("lead_customer_id = ?", cid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "lead_created_at",
		"updated_at": "lead_updated_at",
		"status":     "lead_status",
		"code":       "lead_code",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var list []model.Lead
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToLeadResponses(list), helper.BuildMeta(total, p))
}

// PATCH /leads/:id
func (ctl *LeadController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.LeadUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	lead, dealCreated, err := service.Update(ctl.DB, uint(id), in)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "lead updated", dto.LeadUpdateResponse{
		Lead:        dto.ToLeadResponse(*lead),
		DealCreated: dealCreated,
	})
}

// DELETE /leads/:id (soft, cascades to deals and activity logs)
func (ctl *LeadController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	if err := service.Delete(ctl.DB, uint(id)); err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "lead deleted", nil)
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, crmerr.ErrNotFound):
		return helper.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, crmerr.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return helper.Error(c, http.StatusConflict, err.Error())
	default:
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
}
