// file: internals/features/crm/activitylogs/controller/activity_log_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/activitylogs/dto"
	"salespipe_backend/internals/features/crm/activitylogs/model"
	helper "salespipe_backend/internals/helpers"
)

// Read-only: activity logs are written exclusively by the lead/deal services.
type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GET /activity-logs?lead_id=&deal_id=
func (ctl *ActivityLogController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.ActivityLog{})
	if lid := c.QueryInt("lead_id"); lid > 0 {
		q = q.Where("activity_log_lead_id = ?", lid)
	}
	if did := c.QueryInt("deal_id"); did > 0 {
		q = q.Where("activity_log_deal_id = ?", did)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "activity_log_created_at",
		"id":         "activity_log_id",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	var list []model.ActivityLog
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToActivityLogResponses(list), helper.BuildMeta(total, p))
}
