package dto

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
)

// SessionResult is the API-facing view of a ledger row. Receipt fields come
// from the vehicle registry; DurationMinutes is live for open sessions and
// the persisted value for closed ones.
type SessionResult struct {
	SID             string     `json:"sid"`
	Status          string     `json:"status"`
	PlateNumber     string     `json:"plate_number"`
	VehicleClass    string     `json:"vehicle_class"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	CostCents       int64      `json:"cost_cents"`
	Currency        string     `json:"currency"`
	HasMembership   bool       `json:"has_membership"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	Deleted         bool       `json:"deleted,omitempty"`
	OwnerName       string     `json:"owner_name,omitempty"`
	OwnerPhone      string     `json:"owner_phone,omitempty"`
}

// NewSessionResult assembles the view from the session and its vehicle.
// now feeds the live duration of open sessions.
func NewSessionResult(s *parking.ParkingSession, v *vehicle.Vehicle, now time.Time) *SessionResult {
	result := &SessionResult{
		SID:             s.SID(),
		Status:          s.Status().String(),
		EntryTime:       s.EntryTime(),
		ExitTime:        s.ExitTime(),
		DurationMinutes: s.LiveDurationMinutes(now),
		CostCents:       s.Cost().AmountInCents(),
		Currency:        s.Cost().Currency(),
		HasMembership:   s.HasMembership(),
		Deleted:         s.IsDeleted(),
	}

	if s.PaymentMethod() != nil {
		method := s.PaymentMethod().String()
		result.PaymentMethod = &method
	}

	if v != nil {
		result.PlateNumber = v.PlateNumber()
		result.VehicleClass = v.Class().String()
		result.OwnerName = v.OwnerName()
		result.OwnerPhone = v.Phone()
	}

	return result
}
