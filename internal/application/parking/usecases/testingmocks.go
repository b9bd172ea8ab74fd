package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/parkgate-inc/parkgate/internal/domain/business"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// passthroughTxManager satisfies TransactionManager without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVehicleRepository) FindByPlate(ctx context.Context, businessID uint, plate string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, businessID, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) FindBySID(ctx context.Context, sid string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*vehicle.Vehicle, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]*vehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepository) List(ctx context.Context, businessID uint, offset, limit int) ([]*vehicle.Vehicle, int64, error) {
	args := m.Called(ctx, businessID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *mockVehicleRepository) SetParked(ctx context.Context, vehicleID uint, at time.Time) error {
	args := m.Called(ctx, vehicleID, at)
	return args.Error(0)
}

func (m *mockVehicleRepository) ClearParked(ctx context.Context, vehicleID uint, at time.Time) error {
	args := m.Called(ctx, vehicleID, at)
	return args.Error(0)
}

func (m *mockVehicleRepository) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	args := m.Called(ctx, fromBusinessID, toBusinessID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, s *parking.ParkingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepository) Update(ctx context.Context, s *parking.ParkingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepository) FindOpenByVehicle(ctx context.Context, businessID, vehicleID uint) (*parking.ParkingSession, error) {
	args := m.Called(ctx, businessID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parking.ParkingSession), args.Error(1)
}

func (m *mockSessionRepository) FindBySID(ctx context.Context, sid string) (*parking.ParkingSession, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parking.ParkingSession), args.Error(1)
}

func (m *mockSessionRepository) ListClosedInWindow(ctx context.Context, businessID uint, window biztime.Window, offset, limit int) ([]*parking.ParkingSession, int64, error) {
	args := m.Called(ctx, businessID, window, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*parking.ParkingSession), args.Get(1).(int64), args.Error(2)
}

func (m *mockSessionRepository) SummarizePaidInWindow(ctx context.Context, businessID uint, window biztime.Window) (*parking.PaidSummary, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parking.PaidSummary), args.Error(1)
}

func (m *mockSessionRepository) ClassBreakdownInWindow(ctx context.Context, businessID uint, window biztime.Window) ([]parking.ClassAggregate, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]parking.ClassAggregate), args.Error(1)
}

func (m *mockSessionRepository) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	args := m.Called(ctx, fromBusinessID, toBusinessID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMembershipRepository struct {
	mock.Mock
}

func (m *mockMembershipRepository) Create(ctx context.Context, mem *membership.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *mockMembershipRepository) Update(ctx context.Context, mem *membership.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *mockMembershipRepository) FindBySID(ctx context.Context, sid string) (*membership.Membership, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *mockMembershipRepository) List(ctx context.Context, businessID, vehicleID uint, offset, limit int) ([]*membership.Membership, int64, error) {
	args := m.Called(ctx, businessID, vehicleID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*membership.Membership), args.Get(1).(int64), args.Error(2)
}

func (m *mockMembershipRepository) FindActiveForVehicle(ctx context.Context, businessID, vehicleID uint, at time.Time) (*membership.Membership, error) {
	args := m.Called(ctx, businessID, vehicleID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *mockMembershipRepository) SummarizeCreatedInWindow(ctx context.Context, businessID uint, window biztime.Window) (*membership.Summary, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Summary), args.Error(1)
}

func (m *mockMembershipRepository) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	args := m.Called(ctx, fromBusinessID, toBusinessID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBusinessRepository struct {
	mock.Mock
}

func (m *mockBusinessRepository) Create(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessRepository) Update(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessRepository) FindByID(ctx context.Context, id uint) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessRepository) FindBySID(ctx context.Context, sid string) (*business.Business, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}
