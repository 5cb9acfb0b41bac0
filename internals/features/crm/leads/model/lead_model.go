// file: internals/features/crm/leads/model/lead_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	"salespipe_backend/internals/constants"
)

// Lead is a pipeline entry before it becomes a deal. lead_code is assigned
// exactly once right after insert and never changes afterwards.
type Lead struct {
	LeadID         uint    `json:"lead_id" gorm:"column:lead_id;primaryKey;autoIncrement"`
	LeadCode       *string `json:"lead_code,omitempty" gorm:"column:lead_code;type:varchar(20);uniqueIndex:uq_leads_code"`
	LeadCustomerID uint    `json:"lead_customer_id" gorm:"column:lead_customer_id;not null;index:idx_leads_customer"`
	LeadContactID  *uint   `json:"lead_contact_id,omitempty" gorm:"column:lead_contact_id"`

	LeadStatus  string  `json:"lead_status" gorm:"column:lead_status;type:varchar(20);not null;default:'new';index:idx_leads_status"`
	LeadContent *string `json:"lead_content,omitempty" gorm:"column:lead_content;type:text"`

	LeadSalesOwner        *string    `json:"lead_sales_owner,omitempty" gorm:"column:lead_sales_owner;type:varchar(80)"`
	LeadNextActionAt      *time.Time `json:"lead_next_action_at,omitempty" gorm:"column:lead_next_action_at"`
	LeadNextActionContent *string    `json:"lead_next_action_content,omitempty" gorm:"column:lead_next_action_content;type:text"`

	LeadCreatedAt time.Time      `json:"lead_created_at" gorm:"column:lead_created_at;not null;autoCreateTime;index:idx_leads_created"`
	LeadUpdatedAt time.Time      `json:"lead_updated_at" gorm:"column:lead_updated_at;not null;autoUpdateTime"`
	LeadDeletedAt gorm.DeletedAt `json:"lead_deleted_at,omitempty" gorm:"column:lead_deleted_at;index"`
}

func (Lead) TableName() string { return "leads" }

// IsConverted reports whether the stored status is the distinguished
// conversion value that triggers deal creation.
func (l *Lead) IsConverted() bool {
	return l.LeadStatus == constants.LeadStatusConverted
}
