// file: internals/features/crm/deals/controller/deal_controller.go
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
	"salespipe_backend/internals/features/crm/deals/dto"
	"salespipe_backend/internals/features/crm/deals/model"
	"salespipe_backend/internals/features/crm/deals/service"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

type DealController struct {
	DB *gorm.DB
}

func NewDealController(db *gorm.DB) *DealController {
	return &DealController{DB: db}
}

// POST /deals
func (ctl *DealController) Create(c *fiber.Ctx) error {
	var in dto.DealCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	deal, err := service.Create(ctl.DB, in)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "deal created", dto.ToDealResponse(*deal))
}

// GET /deals/:id
func (ctl *DealController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Deal
	if err := ctl.DB.First(&m, "deal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "deal not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", dto.ToDealResponse(m))
}

// GET /deals?stage=&lead_id=
func (ctl *DealController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Deal{})
	if stage := strings.TrimSpace(c.Query("stage")); stage != "" {
		q = q.Where("deal_stage = ?", stage)
	}
	if lid := c.QueryInt("lead_id"); lid > 0 {
		q = q.Where("deal_lead_id = ?", lid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "deal_created_at",
		"updated_at": "deal_updated_at",
		"stage":      "deal_stage",
		"amount":     "deal_expected_amount",
		"code":       "deal_code",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var list []model.Deal
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToDealResponses(list), helper.BuildMeta(total, p))
}

// PATCH /deals/:id
func (ctl *DealController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.DealUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	deal, err := service.Update(ctl.DB, uint(id), in)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "deal updated", dto.ToDealResponse(*deal))
}

// DELETE /deals/:id (soft, cascades to activity logs)
func (ctl *DealController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	if err := service.Delete(ctl.DB, uint(id)); err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "deal deleted", nil)
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
