package service

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salespipe_backend/internals/features/crm/activitylogs/dto"
	logModel "salespipe_backend/internals/features/crm/activitylogs/model"
	contactModel "salespipe_backend/internals/features/crm/contacts/model"
	customerModel "salespipe_backend/internals/features/crm/customers/model"
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

func TestDeriveLeadSnapshotManagerFallback(t *testing.T) {
	db := newTestDB(t)

	cust := customerModel.Customer{CustomerName: "가나상사"}
	require.NoError(t, db.Create(&cust).Error)

	// earliest contact wins the fallback, not the most recent one
	first := contactModel.Contact{ContactCustomerID: cust.CustomerID, ContactName: "첫째"}
	require.NoError(t, db.Create(&first).Error)
	second := contactModel.Contact{ContactCustomerID: cust.CustomerID, ContactName: "둘째"}
	require.NoError(t, db.Create(&second).Error)

	lead := leadModel.Lead{LeadCustomerID: cust.CustomerID, LeadStatus: "new"}
	require.NoError(t, db.Create(&lead).Error)

	payload, err := DeriveLeadSnapshot(db, lead.LeadID)
	require.NoError(t, err)
	require.NotNil(t, payload)
	require.NotNil(t, payload.ManagerName)
	assert.Equal(t, "첫째", *payload.ManagerName)

	// a direct contact link takes precedence over the fallback
	require.NoError(t, db.Model(&lead).Update("lead_contact_id", second.ContactID).Error)
	payload, err = DeriveLeadSnapshot(db, lead.LeadID)
	require.NoError(t, err)
	require.NotNil(t, payload.ManagerName)
	assert.Equal(t, "둘째", *payload.ManagerName)
}

func TestDeriveLeadSnapshotMissingLead(t *testing.T) {
	db := newTestDB(t)

	payload, err := DeriveLeadSnapshot(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestDeriveLeadSnapshotDefaultsStrings(t *testing.T) {
	db := newTestDB(t)

	cust := customerModel.Customer{CustomerName: "무담당상사"}
	require.NoError(t, db.Create(&cust).Error)
	lead := leadModel.Lead{LeadCustomerID: cust.CustomerID, LeadStatus: "new"}
	require.NoError(t, db.Create(&lead).Error)

	payload, err := DeriveLeadSnapshot(db, lead.LeadID)
	require.NoError(t, err)
	require.NotNil(t, payload)

	// optional text fields come back set-to-empty so the snapshot is loggable
	require.NotNil(t, payload.SalesOwner)
	assert.Empty(t, *payload.SalesOwner)
	require.NotNil(t, payload.NextActionContent)
	assert.Empty(t, *payload.NextActionContent)
	assert.True(t, payload.HasFields())
}

func TestDeriveDealSnapshotStageOverride(t *testing.T) {
	db := newTestDB(t)

	deal := dealModel.Deal{DealStage: "자격확인"}
	require.NoError(t, db.Create(&deal).Error)

	override := "협상/계약"
	payload, err := DeriveDealSnapshot(db, deal.DealID, &override)
	require.NoError(t, err)
	require.NotNil(t, payload)
	require.NotNil(t, payload.Stage)
	assert.Equal(t, override, *payload.Stage)

	payload, err = DeriveDealSnapshot(db, deal.DealID, nil)
	require.NoError(t, err)
	require.NotNil(t, payload.Stage)
	assert.Equal(t, "자격확인", *payload.Stage)
}

func TestAppendSkipsEmptyPayloads(t *testing.T) {
	db := newTestDB(t)

	row, err := Append(db, nil)
	require.NoError(t, err)
	assert.Nil(t, row)

	row, err = Append(db, &dto.LogPayload{})
	require.NoError(t, err)
	assert.Nil(t, row)

	var count int64
	require.NoError(t, db.Model(&logModel.ActivityLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAppendStoresDetailJSON(t *testing.T) {
	db := newTestDB(t)

	leadID := uint(7)
	owner := "홍길동"
	row, err := Append(db, &dto.LogPayload{
		LeadID:     &leadID,
		SalesOwner: &owner,
	})
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.NotZero(t, row.ActivityLogID)

	var decoded dto.LogPayload
	require.NoError(t, sonic.Unmarshal(row.ActivityLogDetail, &decoded))
	require.NotNil(t, decoded.LeadID)
	assert.Equal(t, leadID, *decoded.LeadID)
	require.NotNil(t, decoded.SalesOwner)
	assert.Equal(t, owner, *decoded.SalesOwner)

	// unset fields stay out of the stored detail entirely
	assert.NotContains(t, string(row.ActivityLogDetail), "expected_amount")
}
