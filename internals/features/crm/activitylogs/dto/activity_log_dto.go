// file: internals/features/crm/activitylogs/dto/activity_log_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/activitylogs/model"
)

// LogPayload is the derived snapshot handed to Append. Nil fields are unset
// and get omitted entirely; they never reach the row, not even as NULLs in
// the serialized detail copy.
type LogPayload struct {
	LeadID *uint `json:"lead_id,omitempty"`
	DealID *uint `json:"deal_id,omitempty"`

	ManagerName       *string    `json:"manager_name,omitempty"`
	SalesOwner        *string    `json:"sales_owner,omitempty"`
	Stage             *string    `json:"stage,omitempty"`
	ProjectName       *string    `json:"project_name,omitempty"`
	ExpectedAmount    *int64     `json:"expected_amount,omitempty"`
	NextActionAt      *time.Time `json:"next_action_at,omitempty"`
	NextActionContent *string    `json:"next_action_content,omitempty"`
}

// HasFields reports whether any snapshot field (beyond the entity references)
// is set. An all-unset payload must not produce a row.
func (p LogPayload) HasFields() bool {
	return p.ManagerName != nil ||
		p.SalesOwner != nil ||
		p.Stage != nil ||
		p.ProjectName != nil ||
		p.ExpectedAmount != nil ||
		p.NextActionAt != nil ||
		p.NextActionContent != nil
}

// Response shape for the read-only listing endpoint.
type ActivityLogResponse struct {
	ActivityLogID     uint  `json:"activity_log_id"`
	ActivityLogLeadID *uint `json:"activity_log_lead_id,omitempty"`
	ActivityLogDealID *uint `json:"activity_log_deal_id,omitempty"`

	ActivityLogManagerName       *string    `json:"activity_log_manager_name,omitempty"`
	ActivityLogSalesOwner        *string    `json:"activity_log_sales_owner,omitempty"`
	ActivityLogStage             *string    `json:"activity_log_stage,omitempty"`
	ActivityLogProjectName       *string    `json:"activity_log_project_name,omitempty"`
	ActivityLogExpectedAmount    *int64     `json:"activity_log_expected_amount,omitempty"`
	ActivityLogNextActionAt      *time.Time `json:"activity_log_next_action_at,omitempty"`
	ActivityLogNextActionContent *string    `json:"activity_log_next_action_content,omitempty"`

	ActivityLogCreatedAt time.Time `json:"activity_log_created_at"`
}

func ToActivityLogResponse(m model.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ActivityLogID:                m.ActivityLogID,
		ActivityLogLeadID:            m.ActivityLogLeadID,
		ActivityLogDealID:            m.ActivityLogDealID,
		ActivityLogManagerName:       m.ActivityLogManagerName,
		ActivityLogSalesOwner:        m.ActivityLogSalesOwner,
		ActivityLogStage:             m.ActivityLogStage,
		ActivityLogProjectName:       m.ActivityLogProjectName,
		ActivityLogExpectedAmount:    m.ActivityLogExpectedAmount,
		ActivityLogNextActionAt:      m.ActivityLogNextActionAt,
		ActivityLogNextActionContent: m.ActivityLogNextActionContent,
		ActivityLogCreatedAt:         m.ActivityLogCreatedAt,
	}
}

func ToActivityLogResponses(ms []model.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToActivityLogResponse(m))
	}
	return out
}
