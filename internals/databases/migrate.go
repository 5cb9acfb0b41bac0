// file: internals/databases/migrate.go
package database

import (
	"log"

	logModel "salespipe_backend/internals/features/crm/activitylogs/model"
	contactModel "salespipe_backend/internals/features/crm/contacts/model"
	customerModel "salespipe_backend/internals/features/crm/customers/model"
	dealModel "salespipe_backend/internals/features/crm/deals/model"
	leadModel "salespipe_backend/internals/features/crm/leads/model"
	lookupModel "salespipe_backend/internals/features/crm/lookups/model"
	userModel "salespipe_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in sync with the static model declarations.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&customerModel.Customer{},
		&contactModel.Contact{},
		&leadModel.Lead{},
		&dealModel.Deal{},
		&logModel.ActivityLog{},
		&lookupModel.Lookup{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] migration done.")
}
