// file: internals/features/crm/customers/model/customer_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	CustomerID       uint           `json:"customer_id" gorm:"column:customer_id;primaryKey;autoIncrement"`
	CustomerName     string         `json:"customer_name" gorm:"column:customer_name;type:varchar(120);not null;index:idx_customers_name"`
	CustomerIndustry *string        `json:"customer_industry,omitempty" gorm:"column:customer_industry;type:varchar(60)"`
	CustomerNote     *string        `json:"customer_note,omitempty" gorm:"column:customer_note;type:text"`
	CustomerCreatedAt time.Time     `json:"customer_created_at" gorm:"column:customer_created_at;not null;autoCreateTime"`
	CustomerUpdatedAt time.Time     `json:"customer_updated_at" gorm:"column:customer_updated_at;not null;autoUpdateTime"`
	CustomerDeletedAt gorm.DeletedAt `json:"customer_deleted_at,omitempty" gorm:"column:customer_deleted_at;index"`
}

func (Customer) TableName() string { return "customers" }
