// Package domain contains the core data types for the trip registration API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Country is a destination a trip passes through.
type Country struct {
	Name string `json:"name"`
}

// Trip is a scheduled journey with a fixed capacity.
// Trips are read-only from this API's perspective; they are seeded by migrations.
type Trip struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	MaxPeople   int       `json:"maxPeople"`

	// Countries is always the full set linked through country_trip, ordered by name.
	Countries []Country `json:"countries"`
}

// RegisteredTrip is a Trip as seen from one client's registration.
// PaymentDate is nil while the registration is unpaid.
type RegisteredTrip struct {
	Trip
	RegisteredAt int  `json:"registeredAt"`
	PaymentDate  *int `json:"paymentDate,omitempty"`
}
