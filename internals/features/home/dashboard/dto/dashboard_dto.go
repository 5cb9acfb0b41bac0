// file: internals/features/home/dashboard/dto/dashboard_dto.go
package dto

type StatusCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type MonthlyAmount struct {
	Month  string `json:"month"` // "2025-01", business calendar (UTC+9)
	Amount int64  `json:"amount"`
	Deals  int    `json:"deals"`
}

type SummaryResponse struct {
	LeadsByStatus  []StatusCount   `json:"leads_by_status"`
	DealsByStage   []StatusCount   `json:"deals_by_stage"`
	MonthlyAmounts []MonthlyAmount `json:"monthly_amounts"`
}
