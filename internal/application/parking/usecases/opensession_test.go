package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func knownVehicle(t *testing.T, businessID uint, plate string, at time.Time) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(businessID, plate, vehiclevo.VehicleClassCar, at)
	require.NoError(t, err)
	v.SetID(42)
	return v
}

func TestOpenSessionUseCase(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("opens a session for a known vehicle", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		sessionRepo := new(mockSessionRepository)
		membershipRepo := new(mockMembershipRepository)

		v := knownVehicle(t, 1, "ABC123", now.Add(-24*time.Hour))
		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "ABC123").Return(v, nil)
		vehicleRepo.On("SetParked", mock.Anything, uint(42), now).Return(nil)
		membershipRepo.On("FindActiveForVehicle", mock.Anything, uint(1), uint(42), now).
			Return(nil, errors.NewNotFoundError("no active membership for vehicle"))
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*parking.ParkingSession")).Return(nil)

		uc := NewOpenSessionUseCase(vehicleRepo, sessionRepo, membershipRepo, passthroughTxManager{}, discardLogger()).
			WithClock(fixedClock(now))

		result, err := uc.Execute(ctx, OpenSessionCommand{BusinessID: 1, PlateNumber: "abc123"})
		require.NoError(t, err)
		assert.Equal(t, "open", result.Status)
		assert.Equal(t, "ABC123", result.PlateNumber)
		assert.Equal(t, now, result.EntryTime)
		assert.False(t, result.HasMembership)
		assert.Zero(t, result.CostCents)

		vehicleRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("registers an unknown plate before opening", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		sessionRepo := new(mockSessionRepository)
		membershipRepo := new(mockMembershipRepository)

		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "NEW001").
			Return(nil, errors.NewNotFoundError("vehicle not found"))
		vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*vehicle.Vehicle).SetID(7)
			}).Return(nil)
		vehicleRepo.On("SetParked", mock.Anything, uint(7), now).Return(nil)
		membershipRepo.On("FindActiveForVehicle", mock.Anything, uint(1), uint(7), now).
			Return(nil, errors.NewNotFoundError("no active membership for vehicle"))
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*parking.ParkingSession")).Return(nil)

		uc := NewOpenSessionUseCase(vehicleRepo, sessionRepo, membershipRepo, passthroughTxManager{}, discardLogger()).
			WithClock(fixedClock(now))

		result, err := uc.Execute(ctx, OpenSessionCommand{
			BusinessID:   1,
			PlateNumber:  " new001 ",
			VehicleClass: "motorcycle",
		})
		require.NoError(t, err)
		assert.Equal(t, "NEW001", result.PlateNumber)
		assert.Equal(t, "motorcycle", result.VehicleClass)

		vehicleRepo.AssertExpectations(t)
	})

	t.Run("pins membership coverage at entry", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		sessionRepo := new(mockSessionRepository)
		membershipRepo := new(mockMembershipRepository)

		v := knownVehicle(t, 1, "MEM001", now.Add(-24*time.Hour))
		active, err := membership.NewMembership(1, 42, 150000, nil, now.Add(-48*time.Hour))
		require.NoError(t, err)
		active.SetID(9)

		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "MEM001").Return(v, nil)
		vehicleRepo.On("SetParked", mock.Anything, uint(42), now).Return(nil)
		membershipRepo.On("FindActiveForVehicle", mock.Anything, uint(1), uint(42), now).Return(active, nil)
		sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *parking.ParkingSession) bool {
			return s.HasMembership() && s.MembershipID() != nil && *s.MembershipID() == 9
		})).Return(nil)

		uc := NewOpenSessionUseCase(vehicleRepo, sessionRepo, membershipRepo, passthroughTxManager{}, discardLogger()).
			WithClock(fixedClock(now))

		result, err := uc.Execute(ctx, OpenSessionCommand{BusinessID: 1, PlateNumber: "MEM001"})
		require.NoError(t, err)
		assert.True(t, result.HasMembership)

		sessionRepo.AssertExpectations(t)
	})

	t.Run("double entry conflicts", func(t *testing.T) {
		vehicleRepo := new(mockVehicleRepository)
		sessionRepo := new(mockSessionRepository)
		membershipRepo := new(mockMembershipRepository)

		v := knownVehicle(t, 1, "DBL001", now.Add(-24*time.Hour))
		vehicleRepo.On("FindByPlate", mock.Anything, uint(1), "DBL001").Return(v, nil)
		vehicleRepo.On("SetParked", mock.Anything, uint(42), now).
			Return(errors.NewConflictError("vehicle is already in the parking lot"))

		uc := NewOpenSessionUseCase(vehicleRepo, sessionRepo, membershipRepo, passthroughTxManager{}, discardLogger()).
			WithClock(fixedClock(now))

		_, err := uc.Execute(ctx, OpenSessionCommand{BusinessID: 1, PlateNumber: "DBL001"})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))

		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects blank plate", func(t *testing.T) {
		uc := NewOpenSessionUseCase(new(mockVehicleRepository), new(mockSessionRepository), new(mockMembershipRepository), passthroughTxManager{}, discardLogger())

		_, err := uc.Execute(ctx, OpenSessionCommand{BusinessID: 1, PlateNumber: "   "})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
