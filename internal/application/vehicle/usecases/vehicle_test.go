package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
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

func registeredVehicle(t *testing.T, businessID uint, plate string, at time.Time) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(businessID, plate, vehiclevo.VehicleClassCar, at)
	require.NoError(t, err)
	v.SetID(42)
	return v
}

func TestGetVehicleByPlateUseCase(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("canonicalizes the plate before lookup", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		v := registeredVehicle(t, 1, "ABC123", now)
		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "ABC123").Return(v, nil)

		uc := NewGetVehicleByPlateUseCase(vehicleRepo, discardLogger())

		result, err := uc.Execute(ctx, GetVehicleByPlateQuery{BusinessID: 1, PlateNumber: " abc123 "})
		require.NoError(t, err)
		assert.Equal(t, "ABC123", result.PlateNumber)

		vehicleRepo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "ZZZ999").
			Return(nil, errors.NewNotFoundError("vehicle not found"))

		uc := NewGetVehicleByPlateUseCase(vehicleRepo, discardLogger())

		_, err := uc.Execute(ctx, GetVehicleByPlateQuery{BusinessID: 1, PlateNumber: "ZZZ999"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListVehiclesUseCase(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("pages with defaults", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		vehicleRepo.On("List", mock.Anything, uint(1), 0, 20).
			Return([]*vehicle.Vehicle{registeredVehicle(t, 1, "ABC123", now)}, int64(1), nil)

		uc := NewListVehiclesUseCase(vehicleRepo, discardLogger())

		result, err := uc.Execute(ctx, ListVehiclesQuery{BusinessID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Vehicles, 1)
	})

	t.Run("requires a business", func(t *testing.T) {
		uc := NewListVehiclesUseCase(new(mockVehicleRepository), discardLogger())

		_, err := uc.Execute(ctx, ListVehiclesQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateVehicleUseCase(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("reclassifies and updates contact", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		v := registeredVehicle(t, 1, "ABC123", now.Add(-24*time.Hour))

		vehicleRepo.On("FindBySID", mock.Anything, v.SID()).Return(v, nil)
		vehicleRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *vehicle.Vehicle) bool {
			return updated.Class() == vehiclevo.VehicleClassMotorcycle && updated.OwnerName() == "Jordan Reyes"
		})).Return(nil)

		class := "motorcycle"
		owner := "Jordan Reyes"
		uc := NewUpdateVehicleUseCase(vehicleRepo, discardLogger()).WithClock(fixedClock(now))

		result, err := uc.Execute(ctx, UpdateVehicleCommand{
			BusinessID: 1,
			SID:        v.SID(),
			Class:      &class,
			OwnerName:  &owner,
		})
		require.NoError(t, err)
		assert.Equal(t, "motorcycle", result.Class)
		assert.Equal(t, "Jordan Reyes", result.OwnerName)

		vehicleRepo.AssertExpectations(t)
	})

	t.Run("keeps phone when only the name changes", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		v := registeredVehicle(t, 1, "ABC123", now.Add(-24*time.Hour))
		v.UpdateContact("Old Name", "555-0100", now.Add(-24*time.Hour))

		vehicleRepo.On("FindBySID", mock.Anything, v.SID()).Return(v, nil)
		vehicleRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		owner := "New Name"
		uc := NewUpdateVehicleUseCase(vehicleRepo, discardLogger()).WithClock(fixedClock(now))

		result, err := uc.Execute(ctx, UpdateVehicleCommand{BusinessID: 1, SID: v.SID(), OwnerName: &owner})
		require.NoError(t, err)
		assert.Equal(t, "New Name", result.OwnerName)
		assert.Equal(t, "555-0100", result.Phone)
	})

	t.Run("hides vehicles of other businesses", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		v := registeredVehicle(t, 1, "ABC123", now)

		vehicleRepo.On("FindBySID", mock.Anything, v.SID()).Return(v, nil)

		uc := NewUpdateVehicleUseCase(vehicleRepo, discardLogger()).WithClock(fixedClock(now))

		_, err := uc.Execute(ctx, UpdateVehicleCommand{BusinessID: 2, SID: v.SID()})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))

		vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown class", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		v := registeredVehicle(t, 1, "ABC123", now)
		vehicleRepo.On("FindBySID", mock.Anything, v.SID()).Return(v, nil)

		class := "truck"
		uc := NewUpdateVehicleUseCase(vehicleRepo, discardLogger()).WithClock(fixedClock(now))

		_, err := uc.Execute(ctx, UpdateVehicleCommand{BusinessID: 1, SID: v.SID(), Class: &class})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects a foreign ID prefix", func(t *testing.T) {
		uc := NewUpdateVehicleUseCase(new(mockVehicleRepository), discardLogger())

		_, err := uc.Execute(ctx, UpdateVehicleCommand{BusinessID: 1, SID: "mem_abc123"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
