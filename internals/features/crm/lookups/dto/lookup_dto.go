// file: internals/features/crm/lookups/dto/lookup_dto.go
package dto

import (
	"time"

	"salespipe_backend/internals/features/crm/lookups/model"
)

type LookupCreateDTO struct {
	LookupCategory  string `json:"lookup_category" validate:"required,max=40"`
	LookupCode      string `json:"lookup_code" validate:"required,max=40"`
	LookupLabel     string `json:"lookup_label" validate:"required,max=80"`
	LookupSortOrder int    `json:"lookup_sort_order" validate:"min=0"`
}

func (in LookupCreateDTO) ToModel() model.Lookup {
	return model.Lookup{
		LookupCategory:  in.LookupCategory,
		LookupCode:      in.LookupCode,
		LookupLabel:     in.LookupLabel,
		LookupSortOrder: in.LookupSortOrder,
	}
}

type LookupUpdateDTO struct {
	LookupLabel     *string `json:"lookup_label,omitempty" validate:"omitempty,max=80"`
	LookupSortOrder *int    `json:"lookup_sort_order,omitempty" validate:"omitempty,min=0"`
}

func (in LookupUpdateDTO) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.LookupLabel != nil {
		ch["lookup_label"] = *in.LookupLabel
	}
	if in.LookupSortOrder != nil {
		ch["lookup_sort_order"] = *in.LookupSortOrder
	}
	return ch
}

type LookupResponse struct {
	LookupID        uint      `json:"lookup_id"`
	LookupCategory  string    `json:"lookup_category"`
	LookupCode      string    `json:"lookup_code"`
	LookupLabel     string    `json:"lookup_label"`
	LookupSortOrder int       `json:"lookup_sort_order"`
	LookupCreatedAt time.Time `json:"lookup_created_at"`
	LookupUpdatedAt time.Time `json:"lookup_updated_at"`
}

func ToLookupResponse(m model.Lookup) LookupResponse {
	return LookupResponse{
		LookupID:        m.LookupID,
		LookupCategory:  m.LookupCategory,
		LookupCode:      m.LookupCode,
		LookupLabel:     m.LookupLabel,
		LookupSortOrder: m.LookupSortOrder,
		LookupCreatedAt: m.LookupCreatedAt,
		LookupUpdatedAt: m.LookupUpdatedAt,
	}
}

func ToLookupResponses(ms []model.Lookup) []LookupResponse {
	out := make([]LookupResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLookupResponse(m))
	}
	return out
}
