// file: internals/features/crm/leads/service/lead_service.go
//
// Orchestrates every lead write as one transaction: the row write, the
// derived activity-log snapshot, and on conversion the dependent deal
// with its own code and snapshot. Nothing here is visible outside the
// transaction until commit.
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salespipe_backend/internals/constants"
	logService "salespipe_backend/internals/features/crm/activitylogs/service"
	"salespipe_backend/internals/features/crm/crmerr"
	dealModel "salespipe_backend/internals/features/crm/deals/model"
	"salespipe_backend/internals/features/crm/leads/dto"
	"salespipe_backend/internals/features/crm/leads/model"
	"salespipe_backend/internals/features/crm/sequence"

	logModel "salespipe_backend/internals/features/crm/activitylogs/model"
)

// Create inserts the lead, assigns its daily "-L" code and appends the first
// snapshot. A lead created directly in converted status spawns its deal here
// too.
func Create(db *gorm.DB, in dto.LeadCreateDTO) (*model.Lead, bool, error) {
	var (
		lead        model.Lead
		dealCreated bool
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		lead = in.ToModel()
		if err := tx.Create(&lead).Error; err != nil {
			return err
		}

		if _, err := sequence.Assign(tx, sequence.LeadTarget, lead.LeadID, lead.LeadCreatedAt); err != nil {
			return err
		}

		// re-read for the stored code and any column defaults
		if err := tx.First(&lead, "lead_id = ?", lead.LeadID).Error; err != nil {
			return err
		}

		payload, err := logService.DeriveLeadSnapshot(tx, lead.LeadID)
		if err != nil {
			return err
		}
		if _, err := logService.Append(tx, payload); err != nil {
			return err
		}

		created, err := maybeConvert(tx, &lead)
		if err != nil {
			return err
		}
		dealCreated = created
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &lead, dealCreated, nil
}

// Update applies a partial update. An empty payload is a no-op: no column
// write, no snapshot, no conversion check. Otherwise the authoritative row is
// re-read after the write, snapshotted, and checked for the transition into
// converted status.
func Update(db *gorm.DB, id uint, in dto.LeadUpdateDTO) (*model.Lead, bool, error) {
	var (
		lead        model.Lead
		dealCreated bool
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		changes := in.Changes()
		if len(changes) == 0 {
			if err := tx.First(&lead, "lead_id = ?", id).Error; err != nil {
				return notFoundOr(err, "lead", id)
			}
			return nil
		}

		res := tx.Model(&model.Lead{}).Where("lead_id = ?", id).Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: lead %d", crmerr.ErrNotFound, id)
		}

		if err := tx.First(&lead, "lead_id = ?", id).Error; err != nil {
			return notFoundOr(err, "lead", id)
		}

		payload, err := logService.DeriveLeadSnapshot(tx, id)
		if err != nil {
			return err
		}
		if _, err := logService.Append(tx, payload); err != nil {
			return err
		}

		created, err := maybeConvert(tx, &lead)
		if err != nil {
			return err
		}
		dealCreated = created
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &lead, dealCreated, nil
}

// Delete soft-deletes the lead together with every deal referencing it and
// every activity log referencing either, all stamped with the same instant.
// One final snapshot of the pre-deletion state is appended first (and is
// itself swept up by the cascade, matching the source system).
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var lead model.Lead
		if err := tx.First(&lead, "lead_id = ?", id).Error; err != nil {
			return notFoundOr(err, "lead", id)
		}

		payload, err := logService.DeriveLeadSnapshot(tx, id)
		if err != nil {
			return err
		}
		if _, err := logService.Append(tx, payload); err != nil {
			return err
		}

		now := time.Now()

		var dealIDs []uint
		if err := tx.Model(&dealModel.Deal{}).
			Where("deal_lead_id = ?", id).
			Pluck("deal_id", &dealIDs).Error; err != nil {
			return err
		}

		if err := tx.Model(&logModel.ActivityLog{}).
			Where("activity_log_lead_id = ?", id).
			Update("activity_log_deleted_at", now).Error; err != nil {
			return err
		}
		if len(dealIDs) > 0 {
			if err := tx.Model(&logModel.ActivityLog{}).
				Where("activity_log_deal_id IN ?", dealIDs).
				Update("activity_log_deleted_at", now).Error; err != nil {
				return err
			}
			if err := tx.Model(&dealModel.Deal{}).
				Where("deal_lead_id = ?", id).
				Update("deal_deleted_at", now).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Lead{}).
			Where("lead_id = ?", id).
			Update("lead_deleted_at", now).Error
	})
}

// maybeConvert creates the dependent deal when the lead sits in converted
// status and no live deal references it yet. Re-saving an already converted
// lead is therefore idempotent.
func maybeConvert(tx *gorm.DB, lead *model.Lead) (bool, error) {
	if !lead.IsConverted() {
		return false, nil
	}

	var existing int64
	if err := tx.Model(&dealModel.Deal{}).
		Where("deal_lead_id = ?", lead.LeadID).
		Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	deal := dealModel.Deal{
		DealLeadID:            &lead.LeadID,
		DealStage:             constants.DealStageInitial,
		DealProjectName:       lead.LeadContent,
		DealSalesOwner:        lead.LeadSalesOwner,
		DealNextActionAt:      lead.LeadNextActionAt,
		DealNextActionContent: lead.LeadNextActionContent,
	}
	if err := tx.Create(&deal).Error; err != nil {
		return false, err
	}

	if _, err := sequence.Assign(tx, sequence.DealTarget, deal.DealID, deal.DealCreatedAt); err != nil {
		return false, err
	}

	payload, err := logService.DeriveDealSnapshot(tx, deal.DealID, nil)
	if err != nil {
		return false, err
	}
	if _, err := logService.Append(tx, payload); err != nil {
		return false, err
	}
	return true, nil
}

func notFoundOr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", crmerr.ErrNotFound, what, id)
	}
	return err
}
