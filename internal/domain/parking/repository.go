package parking

import (
	"context"

	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
)

// PaidSummary aggregates the revenue-bearing sessions that closed inside a
// business-day window. Only sessions with a positive cost count; membership
// closes price at zero and stay out of both the total and the average.
type PaidSummary struct {
	TotalCents   int64
	Count        int64
	AverageCents int64
}

// ClassAggregate is one row of the per-vehicle-class breakdown for a window.
type ClassAggregate struct {
	Class      string
	Count      int64
	TotalCents int64
}

// ParkingSessionRepository is the storage port for the session ledger.
//
// Every read excludes soft-deleted rows except FindBySID, which is the direct
// inspection path and therefore sees struck rows too.
type ParkingSessionRepository interface {
	// Create inserts an open session. The ledger carries a unique open-slot
	// column set to the vehicle ID while the session is open; a second open
	// insert for the same vehicle fails with a conflict.
	Create(ctx context.Context, s *ParkingSession) error

	// Update persists exit time, duration, cost, payment method, the cleared
	// open slot and the soft-delete marker.
	Update(ctx context.Context, s *ParkingSession) error

	// FindOpenByVehicle returns the single non-deleted open session for the
	// vehicle, or a not-found error.
	FindOpenByVehicle(ctx context.Context, businessID, vehicleID uint) (*ParkingSession, error)

	// FindBySID looks a session up by its public ID. Soft-deleted rows are
	// returned; callers that must not see them check IsDeleted themselves.
	FindBySID(ctx context.Context, sid string) (*ParkingSession, error)

	// ListClosedInWindow pages through non-deleted sessions whose exit time
	// falls inside the window, newest exit first.
	ListClosedInWindow(ctx context.Context, businessID uint, window biztime.Window, offset, limit int) ([]*ParkingSession, int64, error)

	// SummarizePaidInWindow totals the non-deleted sessions with exit time in
	// the window and cost > 0. A window with no paid sessions yields the zero
	// summary, average included.
	SummarizePaidInWindow(ctx context.Context, businessID uint, window biztime.Window) (*PaidSummary, error)

	// ClassBreakdownInWindow groups the same paid population by vehicle
	// class. Classes with no sessions are absent from the result.
	ClassBreakdownInWindow(ctx context.Context, businessID uint, window biztime.Window) ([]ClassAggregate, error)

	// ReassignBusiness rewrites the owning business on every session of
	// fromBusinessID, soft-deleted rows included, and returns the number of
	// rows touched.
	ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error)
}
