package dto

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
)

// MembershipResult is the API-facing view of a membership.
type MembershipResult struct {
	SID         string     `json:"sid"`
	PlateNumber string     `json:"plate_number,omitempty"`
	ValueCents  int64      `json:"value_cents"`
	Enabled     bool       `json:"enabled"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewMembershipResult assembles the view; v may be nil when the registry row
// is gone.
func NewMembershipResult(m *membership.Membership, v *vehicle.Vehicle) *MembershipResult {
	result := &MembershipResult{
		SID:        m.SID(),
		ValueCents: m.ValueCents(),
		Enabled:    m.Enabled(),
		StartsAt:   m.StartsAt(),
		EndsAt:     m.EndsAt(),
		CreatedAt:  m.CreatedAt(),
	}
	if v != nil {
		result.PlateNumber = v.PlateNumber()
	}
	return result
}
