// file: internals/helpers/dbtime/dbtime.go
package dbtime

import "time"

// Business dates (daily code keys, dashboard buckets) are pinned to a fixed
// UTC+9 offset, independent of the host timezone and of any tz database.
var BusinessZone = time.FixedZone("UTC+9", 9*60*60)

// ToBusinessTime converts a stored (UTC) instant to business-calendar time.
func ToBusinessTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(BusinessZone)
}

// DateKey renders the 8-digit business calendar date of t, e.g. "20250101".
func DateKey(t time.Time) string {
	return t.In(BusinessZone).Format("20060102")
}

// DayRange returns the UTC instants [from, to) bounding the business
// calendar day that contains t.
func DayRange(t time.Time) (time.Time, time.Time) {
	bt := t.In(BusinessZone)
	from := time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, BusinessZone)
	return from.UTC(), from.Add(24 * time.Hour).UTC()
}
