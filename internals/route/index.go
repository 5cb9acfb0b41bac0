// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "salespipe_backend/internals/middlewares/auth"
	routeDetails "salespipe_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.AuthRoutes(public, db)

	// ===================== AUTHORIZED =====================
	log.Println("[INFO] Setting up AUTHORIZED group...")
	authorized := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting CRM routes...")
	routeDetails.CrmRoutes(authorized, db)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeRoutes(authorized, db)
}
