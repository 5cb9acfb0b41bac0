// file: internals/features/crm/deals/route/deal_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dealController "salespipe_backend/internals/features/crm/deals/controller"
)

func DealRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dealController.NewDealController(db)

	r.Post("/deals", ctrl.Create)
	r.Get("/deals", ctrl.List)
	r.Get("/deals/:id", ctrl.GetByID)
	r.Patch("/deals/:id", ctrl.Update)
	r.Delete("/deals/:id", ctrl.Delete)
}
