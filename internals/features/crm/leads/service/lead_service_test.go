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
	dealModel "salespipe_backend/internals/features/crm/deals/model"
	"salespipe_backend/internals/features/crm/leads/dto"
	leadModel "salespipe_backend/internals/features/crm/leads/model"
	"salespipe_backend/internals/helpers/dbtime"
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

func seedCustomer(t *testing.T, db *gorm.DB, contactName string) (uint, uint) {
	t.Helper()
	cust := customerModel.Customer{CustomerName: "테스트상사"}
	require.NoError(t, db.Create(&cust).Error)
	contact := contactModel.Contact{ContactCustomerID: cust.CustomerID, ContactName: contactName}
	require.NoError(t, db.Create(&contact).Error)
	return cust.CustomerID, contact.ContactID
}

func strptr(s string) *string { return &s }

func leadLogs(t *testing.T, db *gorm.DB, leadID uint) []logModel.ActivityLog {
	t.Helper()
	var logs []logModel.ActivityLog
	require.NoError(t, db.Where("activity_log_lead_id = ?", leadID).
		Order("activity_log_id ASC").Find(&logs).Error)
	return logs
}

func TestCreateAssignsCodeAndSnapshot(t *testing.T) {
	db := newTestDB(t)
	custID, contactID := seedCustomer(t, db, "김대리")

	lead, dealCreated, err := Create(db, dto.LeadCreateDTO{
		LeadCustomerID: custID,
		LeadContactID:  &contactID,
		LeadContent:    strptr("신규 문의"),
	})
	require.NoError(t, err)
	assert.False(t, dealCreated)
	assert.Equal(t, constants.LeadStatusNew, lead.LeadStatus)

	require.NotNil(t, lead.LeadCode)
	assert.True(t, strings.HasPrefix(*lead.LeadCode, dbtime.DateKey(lead.LeadCreatedAt)+constants.CodeTokenLead))

	logs := leadLogs(t, db, lead.LeadID)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].ActivityLogManagerName)
	assert.Equal(t, "김대리", *logs[0].ActivityLogManagerName)
	assert.NotEmpty(t, logs[0].ActivityLogDetail)
}

func TestCreateConvertedSpawnsDeal(t *testing.T) {
	db := newTestDB(t)
	custID, _ := seedCustomer(t, db, "이부장")

	lead, dealCreated, err := Create(db, dto.LeadCreateDTO{
		LeadCustomerID: custID,
		LeadStatus:     constants.LeadStatusConverted,
		LeadContent:    strptr("A프로젝트"),
	})
	require.NoError(t, err)
	assert.True(t, dealCreated)

	var deal dealModel.Deal
	require.NoError(t, db.First(&deal, "deal_lead_id = ?", lead.LeadID).Error)
	assert.Equal(t, constants.DealStageInitial, deal.DealStage)
	require.NotNil(t, deal.DealProjectName)
	assert.Equal(t, "A프로젝트", *deal.DealProjectName)
	require.NotNil(t, deal.DealCode)
	assert.Contains(t, *deal.DealCode, constants.CodeTokenDeal)

	// one snapshot for the lead, one for the spawned deal
	assert.Len(t, leadLogs(t, db, lead.LeadID), 1)
	var dealLogCount int64
	require.NoError(t, db.Model(&logModel.ActivityLog{}).
		Where("activity_log_deal_id = ?", deal.DealID).Count(&dealLogCount).Error)
	assert.EqualValues(t, 1, dealLogCount)
}

func TestUpdateToConvertedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	custID, _ := seedCustomer(t, db, "박과장")

	lead, _, err := Create(db, dto.LeadCreateDTO{
		LeadCustomerID: custID,
		LeadContent:    strptr("B프로젝트"),
	})
	require.NoError(t, err)

	updated, dealCreated, err := Update(db, lead.LeadID, dto.LeadUpdateDTO{
		LeadStatus: strptr(constants.LeadStatusConverted),
	})
	require.NoError(t, err)
	assert.True(t, dealCreated)
	assert.Equal(t, constants.LeadStatusConverted, updated.LeadStatus)

	// saving an already converted lead must not spawn a second deal
	_, dealCreated, err = Update(db, lead.LeadID, dto.LeadUpdateDTO{
		LeadSalesOwner: strptr("홍길동"),
	})
	require.NoError(t, err)
	assert.False(t, dealCreated)

	var dealCount int64
	require.NoError(t, db.Model(&dealModel.Deal{}).
		Where("deal_lead_id = ?", lead.LeadID).Count(&dealCount).Error)
	assert.EqualValues(t, 1, dealCount)
}

func TestUpdateEmptyPayloadIsNoop(t *testing.T) {
	db := newTestDB(t)
	custID, _ := seedCustomer(t, db, "최사원")

	lead, _, err := Create(db, dto.LeadCreateDTO{LeadCustomerID: custID})
	require.NoError(t, err)
	before := len(leadLogs(t, db, lead.LeadID))

	got, dealCreated, err := Update(db, lead.LeadID, dto.LeadUpdateDTO{})
	require.NoError(t, err)
	assert.False(t, dealCreated)
	assert.Equal(t, lead.LeadID, got.LeadID)

	assert.Len(t, leadLogs(t, db, lead.LeadID), before)
}

func TestUpdateMissingLead(t *testing.T) {
	db := newTestDB(t)

	_, _, err := Update(db, 9999, dto.LeadUpdateDTO{
		LeadStatus: strptr(constants.LeadStatusHold),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrNotFound)
}

func TestDeleteCascadesWithOneTimestamp(t *testing.T) {
	db := newTestDB(t)
	custID, _ := seedCustomer(t, db, "정대리")

	lead, dealCreated, err := Create(db, dto.LeadCreateDTO{
		LeadCustomerID: custID,
		LeadStatus:     constants.LeadStatusConverted,
		LeadContent:    strptr("C프로젝트"),
	})
	require.NoError(t, err)
	require.True(t, dealCreated)

	require.NoError(t, Delete(db, lead.LeadID))

	var count int64
	require.NoError(t, db.Model(&leadModel.Lead{}).Where("lead_id = ?", lead.LeadID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&dealModel.Deal{}).Where("deal_lead_id = ?", lead.LeadID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&logModel.ActivityLog{}).Where("activity_log_lead_id = ?", lead.LeadID).Count(&count).Error)
	assert.Zero(t, count)

	// rows survive under the soft-delete scope and share one deletion instant
	var gone leadModel.Lead
	require.NoError(t, db.Unscoped().First(&gone, "lead_id = ?", lead.LeadID).Error)
	require.True(t, gone.LeadDeletedAt.Valid)

	var goneDeal dealModel.Deal
	require.NoError(t, db.Unscoped().First(&goneDeal, "deal_lead_id = ?", lead.LeadID).Error)
	require.True(t, goneDeal.DealDeletedAt.Valid)
	assert.True(t, gone.LeadDeletedAt.Time.Equal(goneDeal.DealDeletedAt.Time))

	var goneLogs []logModel.ActivityLog
	require.NoError(t, db.Unscoped().
		Where("activity_log_lead_id = ? OR activity_log_deal_id = ?", lead.LeadID, goneDeal.DealID).
		Find(&goneLogs).Error)
	require.NotEmpty(t, goneLogs)
	for _, l := range goneLogs {
		require.True(t, l.ActivityLogDeletedAt.Valid)
		assert.True(t, gone.LeadDeletedAt.Time.Equal(l.ActivityLogDeletedAt.Time))
	}
}

func TestDeleteMissingLead(t *testing.T) {
	db := newTestDB(t)

	err := Delete(db, 12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrNotFound)
}

func TestCreateUsesBusinessDayInCode(t *testing.T) {
	db := newTestDB(t)
	custID, _ := seedCustomer(t, db, "오차장")

	lead, _, err := Create(db, dto.LeadCreateDTO{LeadCustomerID: custID})
	require.NoError(t, err)
	require.NotNil(t, lead.LeadCode)

	wantKey := lead.LeadCreatedAt.In(dbtime.BusinessZone).Format("20060102")
	assert.Equal(t, wantKey+constants.CodeTokenLead+"001", *lead.LeadCode)
}
