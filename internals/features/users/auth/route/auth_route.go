// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "salespipe_backend/internals/features/users/auth/controller"
	"salespipe_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/auth/register", ctrl.Register)
	app.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
