package parking

import (
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/domain/billing"
	vo "github.com/parkgate-inc/parkgate/internal/domain/parking/valueobjects"
	apperrors "github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
)

// ParkingSession is one ledger row: a single open-to-close occupancy cycle.
//
// The state machine has one transition, OPEN -> CLOSED, applied exactly once
// at checkout. Soft deletion is orthogonal: it can strike an open or a closed
// row and only affects visibility, never the entry/exit axis.
//
// Membership coverage is captured once, at entry; later membership changes
// never retroactively reprice a session that is already open.
type ParkingSession struct {
	id         uint
	sid        string
	businessID uint
	vehicleID  uint

	entryTime time.Time
	exitTime  *time.Time

	// durationMinutes is persisted only at checkout. While the session is
	// open, readers recompute elapsed minutes from the clock instead
	// (see LiveDurationMinutes); the stored value stays zero until close.
	durationMinutes int
	cost            billing.Money

	hasMembership bool
	membershipID  *uint

	paymentMethod *vo.PaymentMethod

	deletedAt *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewParkingSession opens a ledger row for a vehicle entering the lot.
// membershipID must be non-nil iff hasMembership is true.
func NewParkingSession(businessID, vehicleID uint, hasMembership bool, membershipID *uint, now time.Time) (*ParkingSession, error) {
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if hasMembership != (membershipID != nil) {
		return nil, fmt.Errorf("membership flag and membership ID must be set together")
	}

	return &ParkingSession{
		sid:           id.NewParkingSessionSID(),
		businessID:    businessID,
		vehicleID:     vehicleID,
		entryTime:     now,
		cost:          billing.Zero(""),
		hasMembership: hasMembership,
		membershipID:  membershipID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Close transitions the session to CLOSED, computing duration and resolving
// cost through the billing calculator. rate is the caller-supplied price for
// the stay; it is ignored when the session carries a membership.
func (s *ParkingSession) Close(now time.Time, rate billing.Money, method *vo.PaymentMethod) error {
	if s.exitTime != nil {
		return apperrors.NewConflictError("session is already closed")
	}
	if method != nil && !method.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid payment method: %s", *method))
	}

	cost, minutes, err := billing.Checkout(s.entryTime, now, s.hasMembership, rate)
	if err != nil {
		return err
	}

	exit := now
	s.exitTime = &exit
	s.durationMinutes = minutes
	s.cost = cost
	s.paymentMethod = method
	s.updatedAt = now
	return nil
}

// SoftDelete marks the session deleted without touching the entry/exit axis
// or the vehicle's parked flag. Idempotent.
func (s *ParkingSession) SoftDelete(now time.Time) {
	if s.deletedAt != nil {
		return
	}
	deleted := now
	s.deletedAt = &deleted
	s.updatedAt = now
}

// Status derives the entry/exit state from the exit timestamp.
func (s *ParkingSession) Status() vo.SessionStatus {
	if s.exitTime == nil {
		return vo.SessionStatusOpen
	}
	return vo.SessionStatusClosed
}

// IsOpen reports whether the session has no exit time yet.
func (s *ParkingSession) IsOpen() bool {
	return s.exitTime == nil
}

// IsDeleted reports whether the session is soft-deleted.
func (s *ParkingSession) IsDeleted() bool {
	return s.deletedAt != nil
}

// LiveDurationMinutes returns the duration to show for the session: the
// persisted value once closed, otherwise minutes elapsed up to now. Nothing
// is persisted on read.
func (s *ParkingSession) LiveDurationMinutes(now time.Time) int {
	if s.exitTime != nil {
		return s.durationMinutes
	}
	return billing.ElapsedMinutes(s.entryTime, now)
}

func (s *ParkingSession) ID() uint                          { return s.id }
func (s *ParkingSession) SID() string                       { return s.sid }
func (s *ParkingSession) BusinessID() uint                  { return s.businessID }
func (s *ParkingSession) VehicleID() uint                   { return s.vehicleID }
func (s *ParkingSession) EntryTime() time.Time              { return s.entryTime }
func (s *ParkingSession) ExitTime() *time.Time              { return s.exitTime }
func (s *ParkingSession) DurationMinutes() int              { return s.durationMinutes }
func (s *ParkingSession) Cost() billing.Money               { return s.cost }
func (s *ParkingSession) HasMembership() bool               { return s.hasMembership }
func (s *ParkingSession) MembershipID() *uint               { return s.membershipID }
func (s *ParkingSession) PaymentMethod() *vo.PaymentMethod  { return s.paymentMethod }
func (s *ParkingSession) DeletedAt() *time.Time             { return s.deletedAt }
func (s *ParkingSession) CreatedAt() time.Time              { return s.createdAt }
func (s *ParkingSession) UpdatedAt() time.Time              { return s.updatedAt }

// SetID writes back the storage-generated ID after a create.
func (s *ParkingSession) SetID(id uint) {
	s.id = id
}

// ReconstructParkingSession rebuilds a session from persistence. Only
// mappers call it.
func ReconstructParkingSession(
	id uint,
	sid string,
	businessID uint,
	vehicleID uint,
	entryTime time.Time,
	exitTime *time.Time,
	durationMinutes int,
	cost billing.Money,
	hasMembership bool,
	membershipID *uint,
	paymentMethod *vo.PaymentMethod,
	deletedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *ParkingSession {
	return &ParkingSession{
		id:              id,
		sid:             sid,
		businessID:      businessID,
		vehicleID:       vehicleID,
		entryTime:       entryTime,
		exitTime:        exitTime,
		durationMinutes: durationMinutes,
		cost:            cost,
		hasMembership:   hasMembership,
		membershipID:    membershipID,
		paymentMethod:   paymentMethod,
		deletedAt:       deletedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}
