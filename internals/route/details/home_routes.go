package details

import (
	DashboardRoutes "salespipe_backend/internals/features/home/dashboard/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HomeRoutes(r fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardRoutes(r, db)
}
