// file: internals/features/crm/deals/dto/deal_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/deals/model"
)

// Create
type DealCreateDTO struct {
	DealLeadID *uint `json:"deal_lead_id,omitempty"`

	DealProjectName    *string    `json:"deal_project_name,omitempty" validate:"omitempty,max=200"`
	DealStage          string     `json:"deal_stage" validate:"omitempty,oneof=자격확인 제안/견적 협상/계약 수주 실주"`
	DealExpectedAmount *int64     `json:"deal_expected_amount,omitempty" validate:"omitempty,min=0"`
	DealCloseDate      *time.Time `json:"deal_close_date,omitempty"`

	DealSalesOwner        *string    `json:"deal_sales_owner,omitempty" validate:"omitempty,max=80"`
	DealNextActionAt      *time.Time `json:"deal_next_action_at,omitempty"`
	DealNextActionContent *string    `json:"deal_next_action_content,omitempty"`
}

func (in DealCreateDTO) ToModel() model.Deal {
	stage := in.DealStage
	if stage == "" {
		stage = "자격확인"
	}
	return model.Deal{
		DealLeadID:            in.DealLeadID,
		DealProjectName:       in.DealProjectName,
		DealStage:             stage,
		DealExpectedAmount:    in.DealExpectedAmount,
		DealCloseDate:         in.DealCloseDate,
		DealSalesOwner:        in.DealSalesOwner,
		DealNextActionAt:      in.DealNextActionAt,
		DealNextActionContent: in.DealNextActionContent,
	}
}

// Update (partial, nil means "leave untouched"). deal_code and deal_lead_id
// are not updatable: the code is immutable and the lead back-reference is
// owned by the conversion flow.
type DealUpdateDTO struct {
	DealProjectName    *string    `json:"deal_project_name,omitempty" validate:"omitempty,max=200"`
	DealStage          *string    `json:"deal_stage,omitempty" validate:"omitempty,oneof=자격확인 제안/견적 협상/계약 수주 실주"`
	DealExpectedAmount *int64     `json:"deal_expected_amount,omitempty" validate:"omitempty,min=0"`
	DealCloseDate      *time.Time `json:"deal_close_date,omitempty"`

	DealSalesOwner        *string    `json:"deal_sales_owner,omitempty" validate:"omitempty,max=80"`
	DealNextActionAt      *time.Time `json:"deal_next_action_at,omitempty"`
	DealNextActionContent *string    `json:"deal_next_action_content,omitempty"`
}

func (in DealUpdateDTO) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.DealProjectName != nil {
		ch["deal_project_name"] = *in.DealProjectName
	}
	if in.DealStage != nil {
		ch["deal_stage"] = *in.DealStage
	}
	if in.DealExpectedAmount != nil {
		ch["deal_expected_amount"] = *in.DealExpectedAmount
	}
	if in.DealCloseDate != nil {
		ch["deal_close_date"] = *in.DealCloseDate
	}
	if in.DealSalesOwner != nil {
		ch["deal_sales_owner"] = *in.DealSalesOwner
	}
	if in.DealNextActionAt != nil {
		ch["deal_next_action_at"] = *in.DealNextActionAt
	}
	if in.DealNextActionContent != nil {
		ch["deal_next_action_content"] = *in.DealNextActionContent
	}
	return ch
}

// Response
type DealResponse struct {
	DealID     uint    `json:"deal_id"`
	DealCode   *string `json:"deal_code,omitempty"`
	DealLeadID *uint   `json:"deal_lead_id,omitempty"`

	DealProjectName    *string    `json:"deal_project_name,omitempty"`
	DealStage          string     `json:"deal_stage"`
	DealExpectedAmount *int64     `json:"deal_expected_amount,omitempty"`
	DealCloseDate      *time.Time `json:"deal_close_date,omitempty"`

	DealSalesOwner        *string    `json:"deal_sales_owner,omitempty"`
	DealNextActionAt      *time.Time `json:"deal_next_action_at,omitempty"`
	DealNextActionContent *string    `json:"deal_next_action_content,omitempty"`

	DealCreatedAt time.Time `json:"deal_created_at"`
	DealUpdatedAt time.Time `json:"deal_updated_at"`
}

func ToDealResponse(m model.Deal) DealResponse {
	return DealResponse{
		DealID:                m.DealID,
		DealCode:              m.DealCode,
		DealLeadID:            m.DealLeadID,
		DealProjectName:       m.DealProjectName,
		DealStage:             m.DealStage,
		DealExpectedAmount:    m.DealExpectedAmount,
		DealCloseDate:         m.DealCloseDate,
		DealSalesOwner:        m.DealSalesOwner,
		DealNextActionAt:      m.DealNextActionAt,
		DealNextActionContent: m.DealNextActionContent,
		DealCreatedAt:         m.DealCreatedAt,
		DealUpdatedAt:         m.DealUpdatedAt,
	}
}

func ToDealResponses(ms []model.Deal) []DealResponse {
	out := make([]DealResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDealResponse(m))
	}
	return out
}
