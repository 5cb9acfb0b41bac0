// file: internals/features/crm/lookups/model/lookup_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Lookup backs the UI's select boxes (lead sources, industries, loss reasons,
// ...). Rows are grouped by category; (category, code) is unique.
type Lookup struct {
	LookupID        uint           `json:"lookup_id" gorm:"column:lookup_id;primaryKey;autoIncrement"`
	LookupCategory  string         `json:"lookup_category" gorm:"column:lookup_category;type:varchar(40);not null;uniqueIndex:uq_lookups_category_code,priority:1"`
	LookupCode      string         `json:"lookup_code" gorm:"column:lookup_code;type:varchar(40);not null;uniqueIndex:uq_lookups_category_code,priority:2"`
	LookupLabel     string         `json:"lookup_label" gorm:"column:lookup_label;type:varchar(80);not null"`
	LookupSortOrder int            `json:"lookup_sort_order" gorm:"column:lookup_sort_order;not null;default:0"`
	LookupCreatedAt time.Time      `json:"lookup_created_at" gorm:"column:lookup_created_at;not null;autoCreateTime"`
	LookupUpdatedAt time.Time      `json:"lookup_updated_at" gorm:"column:lookup_updated_at;not null;autoUpdateTime"`
	LookupDeletedAt gorm.DeletedAt `json:"lookup_deleted_at,omitempty" gorm:"column:lookup_deleted_at;index"`
}

func (Lookup) TableName() string { return "lookups" }
