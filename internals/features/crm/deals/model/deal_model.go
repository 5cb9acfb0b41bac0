// file: internals/features/crm/deals/model/deal_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Deal is a qualified opportunity. At most one non-deleted deal references a
// given lead; that rule lives in the lead service, not in a DB constraint.
type Deal struct {
	DealID     uint    `json:"deal_id" gorm:"column:deal_id;primaryKey;autoIncrement"`
	DealCode   *string `json:"deal_code,omitempty" gorm:"column:deal_code;type:varchar(20);uniqueIndex:uq_deals_code"`
	DealLeadID *uint   `json:"deal_lead_id,omitempty" gorm:"column:deal_lead_id;index:idx_deals_lead"`

	DealProjectName    *string    `json:"deal_project_name,omitempty" gorm:"column:deal_project_name;type:varchar(200)"`
	DealStage          string     `json:"deal_stage" gorm:"column:deal_stage;type:varchar(20);not null;default:'자격확인';index:idx_deals_stage"`
	DealExpectedAmount *int64     `json:"deal_expected_amount,omitempty" gorm:"column:deal_expected_amount"`
	DealCloseDate      *time.Time `json:"deal_close_date,omitempty" gorm:"column:deal_close_date"`

	DealSalesOwner        *string    `json:"deal_sales_owner,omitempty" gorm:"column:deal_sales_owner;type:varchar(80)"`
	DealNextActionAt      *time.Time `json:"deal_next_action_at,omitempty" gorm:"column:deal_next_action_at"`
	DealNextActionContent *string    `json:"deal_next_action_content,omitempty" gorm:"column:deal_next_action_content;type:text"`

	DealCreatedAt time.Time      `json:"deal_created_at" gorm:"column:deal_created_at;not null;autoCreateTime;index:idx_deals_created"`
	DealUpdatedAt time.Time      `json:"deal_updated_at" gorm:"column:deal_updated_at;not null;autoUpdateTime"`
	DealDeletedAt gorm.DeletedAt `json:"deal_deleted_at,omitempty" gorm:"column:deal_deleted_at;index"`
}

func (Deal) TableName() string { return "deals" }
