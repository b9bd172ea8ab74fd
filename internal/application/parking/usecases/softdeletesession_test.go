package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

func TestSoftDeleteSessionUseCase(t *testing.T) {
	entry := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	deleteAt := entry.Add(2 * time.Hour)
	ctx := context.Background()

	t.Run("strikes the session and returns it", func(t *testing.T) {
		sessionRepo := new(mockSessionRepository)
		vehicleRepo := new(mockVehicleRepository)
		session := openSessionFor(t, 1, 42, entry, false)

		sessionRepo.On("FindBySID", mock.Anything, session.SID()).Return(session, nil)
		sessionRepo.On("Update", mock.Anything, session).Return(nil)
		vehicleRepo.On("FindByIDs", mock.Anything, []uint{42}).
			Return(map[uint]*vehicle.Vehicle{}, nil)

		uc := NewSoftDeleteSessionUseCase(sessionRepo, vehicleRepo, discardLogger()).WithClock(fixedClock(deleteAt))

		result, err := uc.Execute(ctx, SoftDeleteSessionCommand{SID: session.SID()})
		require.NoError(t, err)
		assert.Equal(t, session.SID(), result.SID)
		assert.True(t, result.Deleted)
		assert.True(t, session.IsDeleted())
		// Deletion does not close: the entry/exit axis is untouched.
		assert.True(t, session.IsOpen())
	})

	t.Run("deleting twice is a no-op that still returns the row", func(t *testing.T) {
		sessionRepo := new(mockSessionRepository)
		vehicleRepo := new(mockVehicleRepository)
		session := openSessionFor(t, 1, 42, entry, false)
		session.SoftDelete(entry.Add(time.Hour))

		sessionRepo.On("FindBySID", mock.Anything, session.SID()).Return(session, nil)
		vehicleRepo.On("FindByIDs", mock.Anything, []uint{42}).
			Return(map[uint]*vehicle.Vehicle{}, nil)

		uc := NewSoftDeleteSessionUseCase(sessionRepo, vehicleRepo, discardLogger()).WithClock(fixedClock(deleteAt))

		result, err := uc.Execute(ctx, SoftDeleteSessionCommand{SID: session.SID()})
		require.NoError(t, err)
		assert.True(t, result.Deleted)
		sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("fills receipt fields from the registry", func(t *testing.T) {
		sessionRepo := new(mockSessionRepository)
		vehicleRepo := new(mockVehicleRepository)
		session := openSessionFor(t, 1, 42, entry, false)
		v := knownVehicle(t, 1, "DEL001", entry.Add(-24*time.Hour))

		sessionRepo.On("FindBySID", mock.Anything, session.SID()).Return(session, nil)
		sessionRepo.On("Update", mock.Anything, session).Return(nil)
		vehicleRepo.On("FindByIDs", mock.Anything, []uint{42}).
			Return(map[uint]*vehicle.Vehicle{42: v}, nil)

		uc := NewSoftDeleteSessionUseCase(sessionRepo, vehicleRepo, discardLogger()).WithClock(fixedClock(deleteAt))

		result, err := uc.Execute(ctx, SoftDeleteSessionCommand{SID: session.SID()})
		require.NoError(t, err)
		assert.Equal(t, "DEL001", result.PlateNumber)
	})

	t.Run("rejects a non-session SID", func(t *testing.T) {
		uc := NewSoftDeleteSessionUseCase(new(mockSessionRepository), new(mockVehicleRepository), discardLogger())

		_, err := uc.Execute(ctx, SoftDeleteSessionCommand{SID: "veh_abc123"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown SID is not found", func(t *testing.T) {
		sessionRepo := new(mockSessionRepository)
		sessionRepo.On("FindBySID", mock.Anything, "ps_missing123").
			Return(nil, errors.NewNotFoundError("parking session not found"))

		uc := NewSoftDeleteSessionUseCase(sessionRepo, new(mockVehicleRepository), discardLogger())

		_, err := uc.Execute(ctx, SoftDeleteSessionCommand{SID: "ps_missing123"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
