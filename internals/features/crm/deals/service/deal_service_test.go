package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salespipe_backend/internals/constants"
	logModel "salespipe_backend/internals/features/crm/activitylogs/model"
	contactModel "salespipe_backend/internals/features/crm/contacts/model"
	customerModel "salespipe_backend/internals/features/crm/customers/model"
	"salespipe_backend/internals/features/crm/crmerr"
	"salespipe_backend/internals/features/crm/deals/dto"
	dealModel "salespipe_backend/internals/features/crm/deals/model"
	leadModel "salespipe_backend/internals/features/crm/leads/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerModel.Customer{},
		&contactModel.Contact{},
		&leadModel.Lead{},
		&dealModel.Deal{},
		&logModel.ActivityLog{},
	))
	return db
}

func strptr(s string) *string { return &s }

func dealLogs(t *testing.T, db *gorm.DB, dealID uint) []logModel.ActivityLog {
	t.Helper()
	var logs []logModel.ActivityLog
	require.NoError(t, db.Where("activity_log_deal_id = ?", dealID).
		Order("activity_log_id ASC").Find(&logs).Error)
	return logs
}

func TestCreateAssignsCodeAndSnapshot(t *testing.T) {
	db := newTestDB(t)

	deal, err := Create(db, dto.DealCreateDTO{
		DealProjectName: strptr("신규 구축건"),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.DealStageInitial, deal.DealStage)
	require.NotNil(t, deal.DealCode)
	assert.True(t, strings.Contains(*deal.DealCode, constants.CodeTokenDeal))

	logs := dealLogs(t, db, deal.DealID)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].ActivityLogStage)
	assert.Equal(t, constants.DealStageInitial, *logs[0].ActivityLogStage)
}

func TestUpdateStageSnapshotsNewStage(t *testing.T) {
	db := newTestDB(t)

	deal, err := Create(db, dto.DealCreateDTO{
		DealProjectName: strptr("증설건"),
	})
	require.NoError(t, err)

	updated, err := Update(db, deal.DealID, dto.DealUpdateDTO{
		DealStage: strptr(constants.DealStageNegotiation),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DealStageNegotiation, updated.DealStage)

	logs := dealLogs(t, db, deal.DealID)
	require.Len(t, logs, 2)
	last := logs[len(logs)-1]
	require.NotNil(t, last.ActivityLogStage)
	assert.Equal(t, constants.DealStageNegotiation, *last.ActivityLogStage)
}

func TestUpdateEmptyPayloadIsNoop(t *testing.T) {
	db := newTestDB(t)

	deal, err := Create(db, dto.DealCreateDTO{})
	require.NoError(t, err)
	before := len(dealLogs(t, db, deal.DealID))

	got, err := Update(db, deal.DealID, dto.DealUpdateDTO{})
	require.NoError(t, err)
	assert.Equal(t, deal.DealID, got.DealID)
	assert.Len(t, dealLogs(t, db, deal.DealID), before)
}

func TestUpdateMissingDeal(t *testing.T) {
	db := newTestDB(t)

	_, err := Update(db, 777, dto.DealUpdateDTO{
		DealStage: strptr(constants.DealStageWon),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrNotFound)
}

func TestDeleteSweepsOwnLogs(t *testing.T) {
	db := newTestDB(t)

	deal, err := Create(db, dto.DealCreateDTO{
		DealProjectName: strptr("종료건"),
	})
	require.NoError(t, err)

	require.NoError(t, Delete(db, deal.DealID))

	var count int64
	require.NoError(t, db.Model(&dealModel.Deal{}).Where("deal_id = ?", deal.DealID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&logModel.ActivityLog{}).
		Where("activity_log_deal_id = ?", deal.DealID).Count(&count).Error)
	assert.Zero(t, count)

	var gone dealModel.Deal
	require.NoError(t, db.Unscoped().First(&gone, "deal_id = ?", deal.DealID).Error)
	require.True(t, gone.DealDeletedAt.Valid)

	var goneLogs []logModel.ActivityLog
	require.NoError(t, db.Unscoped().
		Where("activity_log_deal_id = ?", deal.DealID).Find(&goneLogs).Error)
	require.NotEmpty(t, goneLogs)
	for _, l := range goneLogs {
		require.True(t, l.ActivityLogDeletedAt.Valid)
		assert.True(t, gone.DealDeletedAt.Time.Equal(l.ActivityLogDeletedAt.Time))
	}
}

func TestDeleteMissingDeal(t *testing.T) {
	db := newTestDB(t)

	err := Delete(db, 4242)
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrNotFound)
}
