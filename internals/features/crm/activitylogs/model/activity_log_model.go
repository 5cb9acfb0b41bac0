// file: internals/features/crm/activitylogs/model/activity_log_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is an append-only snapshot of a lead or deal taken at the moment
// of a write. Rows are never updated in place; a cascade soft delete is the
// only mutation they ever see. Exactly one of lead_id / deal_id is set per row
// in normal operation; the schema does not forbid both.
type ActivityLog struct {
	ActivityLogID     uint  `json:"activity_log_id" gorm:"column:activity_log_id;primaryKey;autoIncrement"`
	ActivityLogLeadID *uint `json:"activity_log_lead_id,omitempty" gorm:"column:activity_log_lead_id;index:idx_activity_logs_lead"`
	ActivityLogDealID *uint `json:"activity_log_deal_id,omitempty" gorm:"column:activity_log_deal_id;index:idx_activity_logs_deal"`

	ActivityLogManagerName       *string    `json:"activity_log_manager_name,omitempty" gorm:"column:activity_log_manager_name;type:varchar(80)"`
	ActivityLogSalesOwner        *string    `json:"activity_log_sales_owner,omitempty" gorm:"column:activity_log_sales_owner;type:varchar(80)"`
	ActivityLogStage             *string    `json:"activity_log_stage,omitempty" gorm:"column:activity_log_stage;type:varchar(20)"`
	ActivityLogProjectName       *string    `json:"activity_log_project_name,omitempty" gorm:"column:activity_log_project_name;type:varchar(200)"`
	ActivityLogExpectedAmount    *int64     `json:"activity_log_expected_amount,omitempty" gorm:"column:activity_log_expected_amount"`
	ActivityLogNextActionAt      *time.Time `json:"activity_log_next_action_at,omitempty" gorm:"column:activity_log_next_action_at"`
	ActivityLogNextActionContent *string    `json:"activity_log_next_action_content,omitempty" gorm:"column:activity_log_next_action_content;type:text"`

	// Raw copy of the filtered snapshot payload, for audit/debugging.
	ActivityLogDetail datatypes.JSON `json:"activity_log_detail,omitempty" gorm:"column:activity_log_detail"`

	ActivityLogCreatedAt time.Time      `json:"activity_log_created_at" gorm:"column:activity_log_created_at;not null;autoCreateTime;index:idx_activity_logs_created"`
	ActivityLogDeletedAt gorm.DeletedAt `json:"activity_log_deleted_at,omitempty" gorm:"column:activity_log_deleted_at;index"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
