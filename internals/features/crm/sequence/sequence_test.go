package sequence

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salespipe_backend/internals/features/crm/crmerr"
	dealModel "salespipe_backend/internals/features/crm/deals/model"
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
	require.NoError(t, db.AutoMigrate(&leadModel.Lead{}, &dealModel.Deal{}))
	return db
}

func createLead(t *testing.T, db *gorm.DB) *leadModel.Lead {
	t.Helper()
	lead := leadModel.Lead{LeadCustomerID: 1, LeadStatus: "new"}
	require.NoError(t, db.Create(&lead).Error)
	return &lead
}

func TestAssignSequentialCodes(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	key := dbtime.DateKey(now)

	first := createLead(t, db)
	code1, err := Assign(db, LeadTarget, first.LeadID, now)
	require.NoError(t, err)
	assert.Equal(t, key+"-L001", code1)

	second := createLead(t, db)
	code2, err := Assign(db, LeadTarget, second.LeadID, now)
	require.NoError(t, err)
	assert.Equal(t, key+"-L002", code2)

	var stored leadModel.Lead
	require.NoError(t, db.First(&stored, "lead_id = ?", first.LeadID).Error)
	require.NotNil(t, stored.LeadCode)
	assert.Equal(t, code1, *stored.LeadCode)
}

func TestAssignTokensArePerEntity(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	key := dbtime.DateKey(now)

	lead := createLead(t, db)
	leadCode, err := Assign(db, LeadTarget, lead.LeadID, now)
	require.NoError(t, err)
	assert.Equal(t, key+"-L001", leadCode)

	deal := dealModel.Deal{DealStage: "자격확인"}
	require.NoError(t, db.Create(&deal).Error)
	dealCode, err := Assign(db, DealTarget, deal.DealID, now)
	require.NoError(t, err)

	// the deal sequence does not see lead codes
	assert.Equal(t, key+"-D001", dealCode)
}

func TestAssignGrowsPastThreeDigits(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	key := dbtime.DateKey(now)

	high := createLead(t, db)
	highCode := key + "-L999"
	require.NoError(t, db.Model(high).Update("lead_code", highCode).Error)

	lead := createLead(t, db)
	code, err := Assign(db, LeadTarget, lead.LeadID, now)
	require.NoError(t, err)
	assert.Equal(t, key+"-L1000", code)
}

func TestAssignRestartsEachBusinessDay(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	yesterday := now.Add(-48 * time.Hour)

	old := createLead(t, db)
	oldCode := dbtime.DateKey(yesterday) + "-L005"
	require.NoError(t, db.Model(old).Updates(map[string]interface{}{
		"lead_code":       oldCode,
		"lead_created_at": yesterday,
	}).Error)

	lead := createLead(t, db)
	code, err := Assign(db, LeadTarget, lead.LeadID, now)
	require.NoError(t, err)
	assert.Equal(t, dbtime.DateKey(now)+"-L001", code)
}

func TestAssignMissingRow(t *testing.T) {
	db := newTestDB(t)

	_, err := Assign(db, LeadTarget, 9999, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrNotFound)
}

func TestAssignConflictAfterRetries(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	yesterday := now.Add(-48 * time.Hour)

	// a row outside today's window already holds today's next code, so every
	// attempt recomputes the same value and trips the unique index
	blocker := createLead(t, db)
	require.NoError(t, db.Model(blocker).Updates(map[string]interface{}{
		"lead_code":       dbtime.DateKey(now) + "-L001",
		"lead_created_at": yesterday,
	}).Error)

	lead := createLead(t, db)
	_, err := Assign(db, LeadTarget, lead.LeadID, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, crmerr.ErrConflict)

	// the failed assignment must not leave a partial code behind
	var stored leadModel.Lead
	require.NoError(t, db.First(&stored, "lead_id = ?", lead.LeadID).Error)
	assert.Nil(t, stored.LeadCode)
}

func TestSeqOf(t *testing.T) {
	cases := []struct {
		code  string
		token string
		want  int
		ok    bool
	}{
		{"20250101-L001", "-L", 1, true},
		{"20250101-L042", "-L", 42, true},
		{"20250101-L1000", "-L", 1000, true},
		{"20250101-D007", "-L", 0, false},
		{"20250101-L", "-L", 0, false},
		{"garbage", "-L", 0, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s_%s", c.code, c.token), func(t *testing.T) {
			n, ok := seqOf(c.code, c.token)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, n)
		})
	}
}
