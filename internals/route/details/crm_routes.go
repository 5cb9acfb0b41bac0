// file: internals/route/details/crm_routes.go
package details

import (
	ActivityLogRoutes "salespipe_backend/internals/features/crm/activitylogs/route"
	ContactRoutes "salespipe_backend/internals/features/crm/contacts/route"
	CustomerRoutes "salespipe_backend/internals/features/crm/customers/route"
	DealRoutes "salespipe_backend/internals/features/crm/deals/route"
	LeadRoutes "salespipe_backend/internals/features/crm/leads/route"
	LookupRoutes "salespipe_backend/internals/features/crm/lookups/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CrmRoutes mounts the whole pipeline surface onto the authorized group.
func CrmRoutes(r fiber.Router, db *gorm.DB) {
	CustomerRoutes.CustomerRoutes(r, db)
	ContactRoutes.ContactRoutes(r, db)
	LeadRoutes.LeadRoutes(r, db)
	DealRoutes.DealRoutes(r, db)
	ActivityLogRoutes.ActivityLogRoutes(r, db)
	LookupRoutes.LookupRoutes(r, db)
}
