// file: internals/features/crm/leads/dto/lead_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/leads/model"
)

// Create
type LeadCreateDTO struct {
	LeadCustomerID uint  `json:"lead_customer_id" validate:"required"`
	LeadContactID  *uint `json:"lead_contact_id,omitempty"`

	LeadStatus  string  `json:"lead_status" validate:"omitempty,oneof=new contacting converted discarded hold"`
	LeadContent *string `json:"lead_content,omitempty"`

	LeadSalesOwner        *string    `json:"lead_sales_owner,omitempty" validate:"omitempty,max=80"`
	LeadNextActionAt      *time.Time `json:"lead_next_action_at,omitempty"`
	LeadNextActionContent *string    `json:"lead_next_action_content,omitempty"`
}

func (in LeadCreateDTO) ToModel() model.Lead {
	status := in.LeadStatus
	if status == "" {
		status = "new"
	}
	return model.Lead{
		LeadCustomerID:        in.LeadCustomerID,
		LeadContactID:         in.LeadContactID,
		LeadStatus:            status,
		LeadContent:           in.LeadContent,
		LeadSalesOwner:        in.LeadSalesOwner,
		LeadNextActionAt:      in.LeadNextActionAt,
		LeadNextActionContent: in.LeadNextActionContent,
	}
}

// Update (partial, nil means "leave untouched")
type LeadUpdateDTO struct {
	LeadCustomerID *uint `json:"lead_customer_id,omitempty"`
	LeadContactID  *uint `json:"lead_contact_id,omitempty"`

	LeadStatus  *string `json:"lead_status,omitempty" validate:"omitempty,oneof=new contacting converted discarded hold"`
	LeadContent *string `json:"lead_content,omitempty"`

	LeadSalesOwner        *string    `json:"lead_sales_owner,omitempty" validate:"omitempty,max=80"`
	LeadNextActionAt      *time.Time `json:"lead_next_action_at,omitempty"`
	LeadNextActionContent *string    `json:"lead_next_action_content,omitempty"`
}

// Changes maps only the fields present in the payload to their columns.
// lead_code is deliberately not reachable from here: codes are immutable
// once assigned.
func (in LeadUpdateDTO) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.LeadCustomerID != nil {
		ch["lead_customer_id"] = *in.LeadCustomerID
	}
	if in.LeadContactID != nil {
		ch["lead_contact_id"] = *in.LeadContactID
	}
	if in.LeadStatus != nil {
		ch["lead_status"] = *in.LeadStatus
	}
	if in.LeadContent != nil {
		ch["lead_content"] = *in.LeadContent
	}
	if in.LeadSalesOwner != nil {
		ch["lead_sales_owner"] = *in.LeadSalesOwner
	}
	if in.LeadNextActionAt != nil {
		ch["lead_next_action_at"] = *in.LeadNextActionAt
	}
	if in.LeadNextActionContent != nil {
		ch["lead_next_action_content"] = *in.LeadNextActionContent
	}
	return ch
}

// Response
type LeadResponse struct {
	LeadID         uint    `json:"lead_id"`
	LeadCode       *string `json:"lead_code,omitempty"`
	LeadCustomerID uint    `json:"lead_customer_id"`
	LeadContactID  *uint   `json:"lead_contact_id,omitempty"`

	LeadStatus  string  `json:"lead_status"`
	LeadContent *string `json:"lead_content,omitempty"`

	LeadSalesOwner        *string    `json:"lead_sales_owner,omitempty"`
	LeadNextActionAt      *time.Time `json:"lead_next_action_at,omitempty"`
	LeadNextActionContent *string    `json:"lead_next_action_content,omitempty"`

	LeadCreatedAt time.Time `json:"lead_created_at"`
	LeadUpdatedAt time.Time `json:"lead_updated_at"`
}

func ToLeadResponse(m model.Lead) LeadResponse {
	return LeadResponse{
		LeadID:                m.LeadID,
		LeadCode:              m.LeadCode,
		LeadCustomerID:        m.LeadCustomerID,
		LeadContactID:         m.LeadContactID,
		LeadStatus:            m.LeadStatus,
		LeadContent:           m.LeadContent,
		LeadSalesOwner:        m.LeadSalesOwner,
		LeadNextActionAt:      m.LeadNextActionAt,
		LeadNextActionContent: m.LeadNextActionContent,
		LeadCreatedAt:         m.LeadCreatedAt,
		LeadUpdatedAt:         m.LeadUpdatedAt,
	}
}

func ToLeadResponses(ms []model.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLeadResponse(m))
	}
	return out
}

// UpdateResult lets the controller report whether the conversion side effect
// fired alongside the updated lead.
type LeadUpdateResponse struct {
	Lead        LeadResponse `json:"lead"`
	DealCreated bool         `json:"deal_created"`
}
