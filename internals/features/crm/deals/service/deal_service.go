// file: internals/features/crm/deals/service/deal_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	logModel "salespipe_backend/internals/features/crm/activitylogs/model"
	logService "salespipe_backend/internals/features/crm/activitylogs/service"
	"salespipe_backend/internals/features/crm/crmerr"
	"salespipe_backend/internals/features/crm/deals/dto"
	"salespipe_backend/internals/features/crm/deals/model"
	"salespipe_backend/internals/features/crm/sequence"
)

// Create inserts the deal, assigns its daily "-D" code and appends the first
// snapshot, all in one transaction.
func Create(db *gorm.DB, in dto.DealCreateDTO) (*model.Deal, error) {
	var deal model.Deal
	err := db.Transaction(func(tx *gorm.DB) error {
		deal = in.ToModel()
		if err := tx.Create(&deal).Error; err != nil {
			return err
		}

		if _, err := sequence.Assign(tx, sequence.DealTarget, deal.DealID, deal.DealCreatedAt); err != nil {
			return err
		}

		if err := tx.First(&deal, "deal_id = ?", deal.DealID).Error; err != nil {
			return err
		}

		payload, err := logService.DeriveDealSnapshot(tx, deal.DealID, nil)
		if err != nil {
			return err
		}
		_, err = logService.Append(tx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// Update applies a partial update and snapshots the result. When the payload
// carries a stage change, the snapshot reports the incoming stage, never a
// value read before the write landed. An empty payload is a no-op.
func Update(db *gorm.DB, id uint, in dto.DealUpdateDTO) (*model.Deal, error) {
	var deal model.Deal
	err := db.Transaction(func(tx *gorm.DB) error {
		changes := in.Changes()
		if len(changes) == 0 {
			return notFoundOr(tx.First(&deal, "deal_id = ?", id).Error, id)
		}

		res := tx.Model(&model.Deal{}).Where("deal_id = ?", id).Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: deal %d", crmerr.ErrNotFound, id)
		}

		if err := tx.First(&deal, "deal_id = ?", id).Error; err != nil {
			return notFoundOr(err, id)
		}

		payload, err := logService.DeriveDealSnapshot(tx, id, in.DealStage)
		if err != nil {
			return err
		}
		_, err = logService.Append(tx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// Delete soft-deletes the deal and every activity log referencing it with one
// shared timestamp, after appending a final pre-deletion snapshot.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var deal model.Deal
		if err := tx.First(&deal, "deal_id = ?", id).Error; err != nil {
			return notFoundOr(err, id)
		}

		payload, err := logService.DeriveDealSnapshot(tx, id, nil)
		if err != nil {
			return err
		}
		if _, err := logService.Append(tx, payload); err != nil {
			return err
		}

		now := time.Now()

		if err := tx.Model(&logModel.ActivityLog{}).
			Where("activity_log_deal_id = ?", id).
			Update("activity_log_deleted_at", now).Error; err != nil {
			return err
		}

		return tx.Model(&model.Deal{}).
			Where("deal_id = ?", id).
			Update("deal_deleted_at", now).Error
	})
}

func notFoundOr(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: deal %d", crmerr.ErrNotFound, id)
	}
	return err
}
