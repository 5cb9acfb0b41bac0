// file: internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"net/http"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dealModel "salespipe_backend/internals/features/crm/deals/model"
	leadModel "salespipe_backend/internals/features/crm/leads/model"
	"salespipe_backend/internals/features/home/dashboard/dto"
	helper "salespipe_backend/internals/helpers"
	"salespipe_backend/internals/helpers/dbtime"
)

// Pure projections over stored rows; no invariants of its own.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /dashboard/summary
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	var leadCounts []dto.StatusCount
	if err := ctl.DB.Model(&leadModel.Lead{}).
		Select("lead_status AS key, COUNT(*) AS count").
		Group("lead_status").
		Scan(&leadCounts).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var dealCounts []dto.StatusCount
	if err := ctl.DB.Model(&dealModel.Deal{}).
		Select("deal_stage AS key, COUNT(*) AS count").
		Group("deal_stage").
		Scan(&dealCounts).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	monthly, err := ctl.monthlyAmounts()
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "ok", dto.SummaryResponse{
		LeadsByStatus:  leadCounts,
		DealsByStage:   dealCounts,
		MonthlyAmounts: monthly,
	})
}

// monthlyAmounts buckets expected amounts by the business-calendar month of
// the deal's creation. Bucketing happens in Go so the month boundary is the
// same UTC+9 boundary the daily codes use, on every SQL dialect.
func (ctl *DashboardController) monthlyAmounts() ([]dto.MonthlyAmount, error) {
	var deals []dealModel.Deal
	if err := ctl.DB.Select("deal_created_at", "deal_expected_amount").
		Find(&deals).Error; err != nil {
		return nil, err
	}

	buckets := map[string]*dto.MonthlyAmount{}
	for _, d := range deals {
		month := dbtime.ToBusinessTime(d.DealCreatedAt).Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &dto.MonthlyAmount{Month: month}
			buckets[month] = b
		}
		b.Deals++
		if d.DealExpectedAmount != nil {
			b.Amount += *d.DealExpectedAmount
		}
	}

	out := make([]dto.MonthlyAmount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}
