// file: internals/features/crm/contacts/controller/contact_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/contacts/dto"
	"salespipe_backend/internals/features/crm/contacts/model"
	helper "salespipe_backend/internals/helpers"
)

var validate = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// POST /contacts
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	var in dto.ContactCreateDTO
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
	return helper.SuccessWithCode(c, http.StatusCreated, "contact created", dto.ToContactResponse(m))
}

// GET /contacts/:id
func (ctl *ContactController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Contact
	if err := ctl.DB.First(&m, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "contact not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "ok", dto.ToContactResponse(m))
}

// GET /contacts?customer_id=
func (ctl *ContactController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Contact{})
	if cid := c.QueryInt("customer_id"); cid > 0 {
		q = q.Where("contact_customer_id = ?", cid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "contact_created_at",
		"name":       "contact_name",
		// id ascending = registration order; the oldest row is the
		// customer's primary contact
		"id": "contact_id",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var list []model.Contact
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToContactResponses(list), helper.BuildMeta(total, p))
}

// PATCH /contacts/:id
func (ctl *ContactController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.ContactUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Contact
	if err := ctl.DB.First(&m, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "contact not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if changes := in.Changes(); len(changes) > 0 {
		if err := ctl.DB.Model(&m).Updates(changes).Error; err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.Success(c, "contact updated", dto.ToContactResponse(m))
}

// DELETE /contacts/:id (soft)
func (ctl *ContactController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.Error(c, http.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.Delete(&model.Contact{}, "contact_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "contact not found")
	}
	return helper.Success(c, "contact deleted", nil)
}
