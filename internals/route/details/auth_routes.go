package details

import (
	authRoute "salespipe_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}
