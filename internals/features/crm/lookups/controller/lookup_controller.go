// file: internals/features/crm/lookups/controller/lookup_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/lookups/dto"
	"salespipe_backend/internals/features/crm/lookups/model"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

// POST /lookups
func (ctl *LookupController) Create(c *fiber.Ctx) error {
	var in dto.LookupCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, http.StatusConflict, "lookup already exists for this category/code")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "lookup created", dto.ToLookupResponse(m))
}

// GET /lookups?category=
func (ctl *LookupController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Lookup{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("lookup_category = ?", cat)
	}

	var list []model.Lookup
	if err := q.Order("lookup_category ASC, lookup_sort_order ASC, lookup_id ASC").Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", dto.ToLookupResponses(list))
}

// PATCH /lookups/:id
func (ctl *LookupController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.LookupUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Lookup
	if err := ctl.DB.First(&m, "lookup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "lookup not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if changes := in.Changes(); len(changes) > 0 {
		if err := ctl.DB.Model(&m).Updates(changes).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.Success(c, "lookup updated", dto.ToLookupResponse(m))
}

// DELETE /lookups/:id (soft)
func (ctl *LookupController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.Delete(&model.Lookup{}, "lookup_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "lookup not found")
	}
	return helper.Success(c, "lookup deleted", nil)
}
