// file: internals/features/crm/customers/controller/customer_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/customers/dto"
	"salespipe_backend/internals/features/crm/customers/model"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// POST /customers
func (ctl *CustomerController) Create(c *fiber.Ctx) error {
	var in dto.CustomerCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := in.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "customer created", dto.ToCustomerResponse(m))
}

// GET /customers/:id
func (ctl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Customer
	if err := ctl.DB.First(&m, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "customer not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", dto.ToCustomerResponse(m))
}

// GET /customers
func (ctl *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Customer{})
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if industry := strings.TrimSpace(c.Query("industry")); industry != "" {
		q = q.Where("customer_industry = ?", industry)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "customer_created_at",
		"updated_at": "customer_updated_at",
		"name":       "customer_name",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var list []model.Customer
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToCustomerResponses(list), helper.BuildMeta(total, p))
}

// PATCH /customers/:id
func (ctl *CustomerController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.CustomerUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Customer
	if err := ctl.DB.First(&m, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "customer not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if changes := in.Changes(); len(changes) > 0 {
		if err := ctl.DB.Model(&m).Updates(changes).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.Success(c, "customer updated", dto.ToCustomerResponse(m))
}

// DELETE /customers/:id (soft)
func (ctl *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.Delete(&model.Customer{}, "customer_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "customer not found")
	}
	return helper.Success(c, "customer deleted", nil)
}
