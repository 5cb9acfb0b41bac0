// file: internals/features/crm/activitylogs/service/snapshot.go
package service

import (
	"errors"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salespipe_backend/internals/features/crm/activitylogs/dto"
	"salespipe_backend/internals/features/crm/activitylogs/model"
	contactModel "salespipe_backend/internals/features/crm/contacts/model"
	dealModel "salespipe_backend/internals/features/crm/deals/model"
	leadModel "salespipe_backend/internals/features/crm/leads/model"
)

// DeriveLeadSnapshot loads the lead and builds its log payload. Returns a nil
// payload (no error) when the lead is gone, e.g. deleted concurrently.
func DeriveLeadSnapshot(tx *gorm.DB, leadID uint) (*dto.LogPayload, error) {
	var lead leadModel.Lead
	if err := tx.First(&lead, "lead_id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	manager, err := resolveManager(tx, lead.LeadContactID, lead.LeadCustomerID)
	if err != nil {
		return nil, err
	}

	return &dto.LogPayload{
		LeadID:            &lead.LeadID,
		ManagerName:       &manager,
		SalesOwner:        orEmpty(lead.LeadSalesOwner),
		NextActionAt:      lead.LeadNextActionAt,
		NextActionContent: orEmpty(lead.LeadNextActionContent),
	}, nil
}

// DeriveDealSnapshot builds the deal's log payload. stageOverride carries the
// stage value a same-transaction update just applied; it wins over the stored
// one so the snapshot never reports a stale stage.
func DeriveDealSnapshot(tx *gorm.DB, dealID uint, stageOverride *string) (*dto.LogPayload, error) {
	var deal dealModel.Deal
	if err := tx.First(&deal, "deal_id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	manager := ""
	if deal.DealLeadID != nil {
		var lead leadModel.Lead
		err := tx.First(&lead, "lead_id = ?", *deal.DealLeadID).Error
		switch {
		case err == nil:
			m, rerr := resolveManager(tx, lead.LeadContactID, lead.LeadCustomerID)
			if rerr != nil {
				return nil, rerr
			}
			manager = m
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	stage := deal.DealStage
	if stageOverride != nil {
		stage = *stageOverride
	}

	return &dto.LogPayload{
		DealID:            &deal.DealID,
		ManagerName:       &manager,
		SalesOwner:        orEmpty(deal.DealSalesOwner),
		Stage:             &stage,
		ProjectName:       orEmpty(deal.DealProjectName),
		ExpectedAmount:    deal.DealExpectedAmount,
		NextActionAt:      deal.DealNextActionAt,
		NextActionContent: orEmpty(deal.DealNextActionContent),
	}, nil
}

// Append writes one immutable snapshot row. A nil payload or a payload with
// no set fields is a no-op and returns (nil, nil): a write that changed
// nothing must not leave a log row behind.
func Append(tx *gorm.DB, p *dto.LogPayload) (*model.ActivityLog, error) {
	if p == nil || !p.HasFields() {
		return nil, nil
	}

	detail, err := sonic.Marshal(p)
	if err != nil {
		return nil, err
	}

	row := model.ActivityLog{
		ActivityLogLeadID:            p.LeadID,
		ActivityLogDealID:            p.DealID,
		ActivityLogManagerName:       p.ManagerName,
		ActivityLogSalesOwner:        p.SalesOwner,
		ActivityLogStage:             p.Stage,
		ActivityLogProjectName:       p.ProjectName,
		ActivityLogExpectedAmount:    p.ExpectedAmount,
		ActivityLogNextActionAt:      p.NextActionAt,
		ActivityLogNextActionContent: p.NextActionContent,
		ActivityLogDetail:            datatypes.JSON(detail),
	}
	if err := tx.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// resolveManager prefers the directly linked contact's name and falls back to
// the customer's primary contact (lowest contact_id). Empty when neither
// exists.
func resolveManager(tx *gorm.DB, contactID *uint, customerID uint) (string, error) {
	if contactID != nil {
		var c contactModel.Contact
		err := tx.First(&c, "contact_id = ?", *contactID).Error
		if err == nil {
			return c.ContactName, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	}

	var c contactModel.Contact
	err := tx.Where("contact_customer_id = ?", customerID).
		Order("contact_id ASC").
		First(&c).Error
	if err == nil {
		return c.ContactName, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return "", err
}

func orEmpty(s *string) *string {
	if s != nil {
		return s
	}
	empty := ""
	return &empty
}
