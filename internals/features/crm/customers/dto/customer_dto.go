// file: internals/features/crm/customers/dto/customer_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/customers/model"
)

type CustomerCreateDTO struct {
	CustomerName     string  `json:"customer_name" validate:"required,max=120"`
	CustomerIndustry *string `json:"customer_industry,omitempty" validate:"omitempty,max=60"`
	CustomerNote     *string `json:"customer_note,omitempty"`
}

func (in CustomerCreateDTO) ToModel() model.Customer {
	return model.Customer{
		CustomerName:     in.CustomerName,
		CustomerIndustry: in.CustomerIndustry,
		CustomerNote:     in.CustomerNote,
	}
}

type CustomerUpdateDTO struct {
	CustomerName     *string `json:"customer_name,omitempty" validate:"omitempty,max=120"`
	CustomerIndustry *string `json:"customer_industry,omitempty" validate:"omitempty,max=60"`
	CustomerNote     *string `json:"customer_note,omitempty"`
}

func (in CustomerUpdateDTO) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.CustomerName != nil {
		ch["customer_name"] = *in.CustomerName
	}
	if in.CustomerIndustry != nil {
		ch["customer_industry"] = *in.CustomerIndustry
	}
	if in.CustomerNote != nil {
		ch["customer_note"] = *in.CustomerNote
	}
	return ch
}

type CustomerResponse struct {
	CustomerID        uint      `json:"customer_id"`
	CustomerName      string    `json:"customer_name"`
	CustomerIndustry  *string   `json:"customer_industry,omitempty"`
	CustomerNote      *string   `json:"customer_note,omitempty"`
	CustomerCreatedAt time.Time `json:"customer_created_at"`
	CustomerUpdatedAt time.Time `json:"customer_updated_at"`
}

func ToCustomerResponse(m model.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:        m.CustomerID,
		CustomerName:      m.CustomerName,
		CustomerIndustry:  m.CustomerIndustry,
		CustomerNote:      m.CustomerNote,
		CustomerCreatedAt: m.CustomerCreatedAt,
		CustomerUpdatedAt: m.CustomerUpdatedAt,
	}
}

func ToCustomerResponses(ms []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCustomerResponse(m))
	}
	return out
}
