package membership

import (
	"context"
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
)

// Summary aggregates memberships sold inside a business-day window: counts
// split by vehicle class plus the summed and averaged sale value. "Sold"
// means created in the window and currently enabled.
type Summary struct {
	Total       int64
	Cars        int64
	Motorcycles int64

	TotalCents   int64
	AverageCents int64
}

// MembershipRepository is the storage port for memberships.
type MembershipRepository interface {
	Create(ctx context.Context, m *Membership) error
	Update(ctx context.Context, m *Membership) error

	FindBySID(ctx context.Context, sid string) (*Membership, error)

	// List pages through the memberships of a business, newest first.
	// vehicleID narrows the page to one vehicle when non-zero.
	List(ctx context.Context, businessID, vehicleID uint, offset, limit int) ([]*Membership, int64, error)

	// FindActiveForVehicle returns the enabled membership covering the
	// vehicle at the given instant, or a not-found error when none does.
	FindActiveForVehicle(ctx context.Context, businessID, vehicleID uint, at time.Time) (*Membership, error)

	// SummarizeCreatedInWindow aggregates enabled memberships created inside
	// the window, joined to the vehicle registry for the class split.
	SummarizeCreatedInWindow(ctx context.Context, businessID uint, window biztime.Window) (*Summary, error)

	// ReassignBusiness rewrites the owning business on every membership of
	// fromBusinessID and returns the number of rows touched.
	ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error)
}
