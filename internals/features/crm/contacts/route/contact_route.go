// file: internals/features/crm/contacts/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "salespipe_backend/internals/features/crm/contacts/controller"
)

func ContactRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactController(db)

	r.Post("/contacts", ctrl.Create)
	r.Get("/contacts", ctrl.List)
	r.Get("/contacts/:id", ctrl.GetByID)
	r.Patch("/contacts/:id", ctrl.Update)
	r.Delete("/contacts/:id", ctrl.Delete)
}
