// file: internals/features/crm/contacts/model/contact_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Contact is one person at a customer. The "primary" contact of a customer is
// the one with the lowest contact_id, i.e. the first one ever registered.
type Contact struct {
	ContactID         uint           `json:"contact_id" gorm:"column:contact_id;primaryKey;autoIncrement"`
	ContactCustomerID uint           `json:"contact_customer_id" gorm:"column:contact_customer_id;not null;index:idx_contacts_customer"`
	ContactName       string         `json:"contact_name" gorm:"column:contact_name;type:varchar(80);not null"`
	ContactTitle      *string        `json:"contact_title,omitempty" gorm:"column:contact_title;type:varchar(60)"`
	ContactEmail      *string        `json:"contact_email,omitempty" gorm:"column:contact_email;type:varchar(255)"`
	ContactPhone      *string        `json:"contact_phone,omitempty" gorm:"column:contact_phone;type:varchar(40)"`
	ContactCreatedAt  time.Time      `json:"contact_created_at" gorm:"column:contact_created_at;not null;autoCreateTime"`
	ContactUpdatedAt  time.Time      `json:"contact_updated_at" gorm:"column:contact_updated_at;not null;autoUpdateTime"`
	ContactDeletedAt  gorm.DeletedAt `json:"contact_deleted_at,omitempty" gorm:"column:contact_deleted_at;index"`
}

func (Contact) TableName() string { return "contacts" }
