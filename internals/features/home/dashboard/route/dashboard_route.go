// file: internals/features/home/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "salespipe_backend/internals/features/home/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	r.Get("/dashboard/summary", ctrl.Summary)
}
