// file: internals/features/crm/sequence/sequence.go
//
// Daily human-readable codes for leads and deals: <dateKey><token><seq>,
// e.g. "20250101-L001". The sequence restarts every business day (UTC+9) and
// is scoped per entity type. Gaps are acceptable under concurrency; duplicates
// are not: the code column carries a unique index and the read-max-write
// step retries on a duplicate-key error.
package sequence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"salespipe_backend/internals/constants"
	"salespipe_backend/internals/features/crm/crmerr"
	"salespipe_backend/internals/helpers/dbtime"
)

// maxAttempts bounds the read-max-write retry loop.
const maxAttempts = 3

// Target names the table/columns a daily code is assigned against.
type Target struct {
	Table           string
	IDColumn        string
	CodeColumn      string
	CreatedAtColumn string
	Token           string
}

var (
	LeadTarget = Target{
		Table:           "leads",
		IDColumn:        "lead_id",
		CodeColumn:      "lead_code",
		CreatedAtColumn: "lead_created_at",
		Token:           constants.CodeTokenLead,
	}
	DealTarget = Target{
		Table:           "deals",
		IDColumn:        "deal_id",
		CodeColumn:      "deal_code",
		CreatedAtColumn: "deal_created_at",
		Token:           constants.CodeTokenDeal,
	}
)

// Assign computes the next daily code for the row identified by id and writes
// it, inside the caller's transaction. Each attempt runs in a nested
// transaction (savepoint) so a duplicate-key failure can be rolled back and
// retried without poisoning the outer transaction.
//
// Returns crmerr.ErrNotFound when the row does not exist at write time and
// crmerr.ErrConflict after retry exhaustion.
func Assign(db *gorm.DB, tgt Target, id uint, at time.Time) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var code string
		err := db.Transaction(func(tx *gorm.DB) error {
			next, err := nextCode(tx, tgt, at)
			if err != nil {
				return err
			}
			res := tx.Table(tgt.Table).
				Where(tgt.IDColumn+" = ?", id).
				Update(tgt.CodeColumn, next)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s %d", crmerr.ErrNotFound, tgt.Table, id)
			}
			code = next
			return nil
		})
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: daily code for %s%s still duplicated after %d attempts: %v",
		crmerr.ErrConflict, dbtime.DateKey(at), tgt.Token, maxAttempts, lastErr)
}

// nextCode re-reads the day's codes and computes max+1. The day is scoped by
// the stored creation timestamp, never parsed back out of the code string, so
// rows that predate this transaction are always counted.
func nextCode(tx *gorm.DB, tgt Target, at time.Time) (string, error) {
	from, to := dbtime.DayRange(at)

	var codes []string
	err := tx.Table(tgt.Table).
		Where(tgt.CreatedAtColumn+" >= ? AND "+tgt.CreatedAtColumn+" < ?", from, to).
		Where(tgt.CodeColumn + " IS NOT NULL").
		Pluck(tgt.CodeColumn, &codes).Error
	if err != nil {
		return "", err
	}

	max := 0
	for _, c := range codes {
		if n, ok := seqOf(c, tgt.Token); ok && n > max {
			max = n
		}
	}

	// %03d keeps at least three digits and keeps growing past 999
	return fmt.Sprintf("%s%s%03d", dbtime.DateKey(at), tgt.Token, max+1), nil
}

// seqOf extracts the sequence number that follows token inside code.
// Codes without the token (or without digits after it) are skipped.
func seqOf(code, token string) (int, bool) {
	i := strings.Index(code, token)
	if i < 0 {
		return 0, false
	}
	tail := code[i+len(token):]
	var digits strings.Builder
	for _, r := range tail {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
