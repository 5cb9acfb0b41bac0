// file: internals/features/crm/contacts/dto/contact_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/contacts/model"
)

type ContactCreateDTO struct {
	ContactCustomerID uint    `json:"contact_customer_id" validate:"required"`
	ContactName       string  `json:"contact_name" validate:"required,max=80"`
	ContactTitle      *string `json:"contact_title,omitempty" validate:"omitempty,max=60"`
	ContactEmail      *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone      *string `json:"contact_phone,omitempty" validate:"omitempty,max=40"`
}

func (in ContactCreateDTO) ToModel() model.Contact {
	return model.Contact{
		ContactCustomerID: in.ContactCustomerID,
		ContactName:       in.ContactName,
		ContactTitle:      in.ContactTitle,
		ContactEmail:      in.ContactEmail,
		ContactPhone:      in.ContactPhone,
	}
}

type ContactUpdateDTO struct {
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,max=80"`
	ContactTitle *string `json:"contact_title,omitempty" validate:"omitempty,max=60"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=40"`
}

func (in ContactUpdateDTO) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.ContactName != nil {
		ch["contact_name"] = *in.ContactName
	}
	if in.ContactTitle != nil {
		ch["contact_title"] = *in.ContactTitle
	}
	if in.ContactEmail != nil {
		ch["contact_email"] = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		ch["contact_phone"] = *in.ContactPhone
	}
	return ch
}

type ContactResponse struct {
	ContactID         uint      `json:"contact_id"`
	ContactCustomerID uint      `json:"contact_customer_id"`
	ContactName       string    `json:"contact_name"`
	ContactTitle      *string   `json:"contact_title,omitempty"`
	ContactEmail      *string   `json:"contact_email,omitempty"`
	ContactPhone      *string   `json:"contact_phone,omitempty"`
	ContactCreatedAt  time.Time `json:"contact_created_at"`
	ContactUpdatedAt  time.Time `json:"contact_updated_at"`
}

func ToContactResponse(m model.Contact) ContactResponse {
	return ContactResponse{
		ContactID:         m.ContactID,
		ContactCustomerID: m.ContactCustomerID,
		ContactName:       m.ContactName,
		ContactTitle:      m.ContactTitle,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		ContactCreatedAt:  m.ContactCreatedAt,
		ContactUpdatedAt:  m.ContactUpdatedAt,
	}
}

func ToContactResponses(ms []model.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToContactResponse(m))
	}
	return out
}
