package vehicle

import (
	"context"
	"time"
)

// VehicleRepository is the storage port for the vehicle registry.
//
// SetParked is a conditional write: it only succeeds when the persisted flag
// is currently false, so two concurrent entries for the same plate cannot
// both pass. Implementations report a conflict error when the flag was
// already set and a not-found error when the vehicle does not exist.
type VehicleRepository interface {
	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error

	FindByPlate(ctx context.Context, businessID uint, plate string) (*Vehicle, error)
	FindBySID(ctx context.Context, sid string) (*Vehicle, error)

	// FindByIDs returns the vehicles for the given internal IDs, keyed by
	// ID. Missing IDs are simply absent from the map.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Vehicle, error)
	List(ctx context.Context, businessID uint, offset, limit int) ([]*Vehicle, int64, error)

	// SetParked atomically flips in_parking false -> true and stamps
	// last_activity_at. Fails with a conflict when the vehicle is already
	// parked.
	SetParked(ctx context.Context, vehicleID uint, at time.Time) error

	// ClearParked unconditionally flips in_parking to false. It is the
	// self-healing path for vehicles stuck parked without an open session,
	// so it must succeed regardless of the current flag value.
	ClearParked(ctx context.Context, vehicleID uint, at time.Time) error

	// ReassignBusiness rewrites the owning business on every vehicle of
	// fromBusinessID and returns the number of rows touched.
	ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error)
}
