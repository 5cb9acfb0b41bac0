// file: internals/features/crm/activitylogs/route/activity_log_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logController "salespipe_backend/internals/features/crm/activitylogs/controller"
)

func ActivityLogRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := logController.NewActivityLogController(db)

	r.Get("/activity-logs", ctrl.List)
}
