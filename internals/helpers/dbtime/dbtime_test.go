package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 14:59 UTC is still 23:59 on the same business day
	before := time.Date(2025, 1, 1, 14, 59, 0, 0, time.UTC)
	assert.Equal(t, "20250101", DateKey(before))

	// 15:00 UTC rolls the business calendar over to the next day
	after := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "20250102", DateKey(after))
}

func TestDayRange(t *testing.T) {
	at := time.Date(2025, 1, 1, 14, 59, 0, 0, time.UTC)
	from, to := DayRange(at)

	assert.Equal(t, time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC), to)
	assert.True(t, !at.Before(from) && at.Before(to))
}

func TestToBusinessTime(t *testing.T) {
	assert.True(t, ToBusinessTime(time.Time{}).IsZero())

	at := time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC)
	bt := ToBusinessTime(at)
	assert.Equal(t, 9, bt.Hour())
	assert.True(t, at.Equal(bt))
}
