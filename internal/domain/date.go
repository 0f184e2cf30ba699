package domain

import "time"

// DateKey encodes the calendar date of t as an integer in YYYYMMDD form,
// the format stored in client_trip.registered_at and client_trip.payment_date.
// The date is taken in t's own location.
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
