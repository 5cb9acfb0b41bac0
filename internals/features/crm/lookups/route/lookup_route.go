// file: internals/features/crm/lookups/route/lookup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "salespipe_backend/internals/features/crm/lookups/controller"
)

func LookupRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := lookupController.NewLookupController(db)

	r.Post("/lookups", ctrl.Create)
	r.Get("/lookups", ctrl.List)
	r.Patch("/lookups/:id", ctrl.Update)
	r.Delete("/lookups/:id", ctrl.Delete)
}
