// file: internals/features/crm/customers/route/customer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "salespipe_backend/internals/features/crm/customers/controller"
)

func CustomerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := customerController.NewCustomerController(db)

	r.Post("/customers", ctrl.Create)
	r.Get("/customers", ctrl.List)
	r.Get("/customers/:id", ctrl.GetByID)
	r.Patch("/customers/:id", ctrl.Update)
	r.Delete("/customers/:id", ctrl.Delete)
}
