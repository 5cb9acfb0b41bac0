// file: internals/features/crm/leads/route/lead_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leadController "salespipe_backend/internals/features/crm/leads/controller"
)

func LeadRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := leadController.NewLeadController(db)

	r.Post("/leads", ctrl.Create)
	r.Get("/leads", ctrl.List)
	r.Get("/leads/:id", ctrl.GetByID)
	r.Patch("/leads/:id", ctrl.Update)
	r.Delete("/leads/:id", ctrl.Delete)
}
