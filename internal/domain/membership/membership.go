package membership

import (
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/id"
)

// Membership grants a vehicle free parking while enabled. Coverage is
// evaluated at session entry and pinned onto the session; disabling a
// membership afterwards does not reprice sessions already open.
type Membership struct {
	id         uint
	sid        string
	businessID uint
	vehicleID  uint

	valueCents int64
	enabled    bool

	startsAt time.Time
	endsAt   *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewMembership creates an enabled membership starting now. valueCents is
// the price paid for it, in integer cents; endsAt is optional, nil means
// open-ended.
func NewMembership(businessID, vehicleID uint, valueCents int64, endsAt *time.Time, now time.Time) (*Membership, error) {
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if valueCents < 0 {
		return nil, fmt.Errorf("membership value cannot be negative")
	}
	if endsAt != nil && !endsAt.After(now) {
		return nil, fmt.Errorf("membership end must be in the future")
	}

	return &Membership{
		sid:        id.NewMembershipSID(),
		businessID: businessID,
		vehicleID:  vehicleID,
		valueCents: valueCents,
		enabled:    true,
		startsAt:   now,
		endsAt:     endsAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// CoversAt reports whether the membership grants coverage at the given
// instant: enabled, started, and not past its end.
func (m *Membership) CoversAt(at time.Time) bool {
	if !m.enabled {
		return false
	}
	if at.Before(m.startsAt) {
		return false
	}
	if m.endsAt != nil && at.After(*m.endsAt) {
		return false
	}
	return true
}

// SetEnabled toggles the membership on or off.
func (m *Membership) SetEnabled(enabled bool, now time.Time) {
	if m.enabled == enabled {
		return
	}
	m.enabled = enabled
	m.updatedAt = now
}

func (m *Membership) ID() uint             { return m.id }
func (m *Membership) SID() string          { return m.sid }
func (m *Membership) BusinessID() uint     { return m.businessID }
func (m *Membership) VehicleID() uint      { return m.vehicleID }
func (m *Membership) ValueCents() int64    { return m.valueCents }
func (m *Membership) Enabled() bool        { return m.enabled }
func (m *Membership) StartsAt() time.Time  { return m.startsAt }
func (m *Membership) EndsAt() *time.Time   { return m.endsAt }
func (m *Membership) CreatedAt() time.Time { return m.createdAt }
func (m *Membership) UpdatedAt() time.Time { return m.updatedAt }

// SetID writes back the storage-generated ID after a create.
func (m *Membership) SetID(id uint) {
	m.id = id
}

// ReconstructMembership rebuilds a Membership from persistence. Only mappers
// call it.
func ReconstructMembership(
	id uint,
	sid string,
	businessID uint,
	vehicleID uint,
	valueCents int64,
	enabled bool,
	startsAt time.Time,
	endsAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Membership {
	return &Membership{
		id:         id,
		sid:        sid,
		businessID: businessID,
		vehicleID:  vehicleID,
		valueCents: valueCents,
		enabled:    enabled,
		startsAt:   startsAt,
		endsAt:     endsAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}
