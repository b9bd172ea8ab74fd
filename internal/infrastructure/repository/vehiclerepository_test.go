package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

func TestVehicleRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db, testLogger())
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("create and find by plate", func(t *testing.T) {
		v := createTestVehicle(t, repo, 1, "abc123", vehiclevo.VehicleClassCar, now)
		assert.NotZero(t, v.ID())

		found, err := repo.FindByPlate(ctx, 1, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", found.PlateNumber())
		assert.Equal(t, vehiclevo.VehicleClassCar, found.Class())
	})

	t.Run("plate lookup is canonical", func(t *testing.T) {
		createTestVehicle(t, repo, 1, "XYZ789", vehiclevo.VehicleClassMotorcycle, now)

		found, err := repo.FindByPlate(ctx, 1, "  xyz789 ")
		require.NoError(t, err)
		assert.Equal(t, "XYZ789", found.PlateNumber())
	})

	t.Run("plates are scoped per business", func(t *testing.T) {
		createTestVehicle(t, repo, 2, "SHARED1", vehiclevo.VehicleClassCar, now)

		_, err := repo.FindByPlate(ctx, 3, "SHARED1")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("duplicate plate within business conflicts", func(t *testing.T) {
		v := createTestVehicle(t, repo, 4, "DUP001", vehiclevo.VehicleClassCar, now)
		_ = v

		dup, err := vehicleForTest(4, "DUP001", now)
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("find by SID", func(t *testing.T) {
		v := createTestVehicle(t, repo, 5, "SID001", vehiclevo.VehicleClassCar, now)

		found, err := repo.FindBySID(ctx, v.SID())
		require.NoError(t, err)
		assert.Equal(t, v.ID(), found.ID())
	})
}

func TestVehicleRepository_SetParked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db, testLogger())
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("parks an idle vehicle", func(t *testing.T) {
		v := createTestVehicle(t, repo, 1, "PARK01", vehiclevo.VehicleClassCar, now)

		require.NoError(t, repo.SetParked(ctx, v.ID(), now))

		found, err := repo.FindByPlate(ctx, 1, "PARK01")
		require.NoError(t, err)
		assert.True(t, found.InParking())
	})

	t.Run("second park conflicts", func(t *testing.T) {
		v := createTestVehicle(t, repo, 1, "PARK02", vehiclevo.VehicleClassCar, now)

		require.NoError(t, repo.SetParked(ctx, v.ID(), now))

		err := repo.SetParked(ctx, v.ID(), now.Add(time.Minute))
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown vehicle is not found", func(t *testing.T) {
		err := repo.SetParked(ctx, 99999, now)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestVehicleRepository_ClearParked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db, testLogger())
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("clears a parked vehicle", func(t *testing.T) {
		v := createTestVehicle(t, repo, 1, "CLR001", vehiclevo.VehicleClassCar, now)
		require.NoError(t, repo.SetParked(ctx, v.ID(), now))

		require.NoError(t, repo.ClearParked(ctx, v.ID(), now.Add(time.Hour)))

		found, err := repo.FindByPlate(ctx, 1, "CLR001")
		require.NoError(t, err)
		assert.False(t, found.InParking())
	})

	t.Run("clearing an idle vehicle succeeds", func(t *testing.T) {
		// Self-healing path: the flag may already be false when the ledger
		// and the registry disagree.
		v := createTestVehicle(t, repo, 1, "CLR002", vehiclevo.VehicleClassCar, now)

		assert.NoError(t, repo.ClearParked(ctx, v.ID(), now))
	})
}

func TestVehicleRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db, testLogger())
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	for i, plate := range []string{"LST001", "LST002", "LST003"} {
		createTestVehicle(t, repo, 7, plate, vehiclevo.VehicleClassCar, now.Add(time.Duration(i)*time.Minute))
	}
	createTestVehicle(t, repo, 8, "OTHER1", vehiclevo.VehicleClassCar, now)

	vehicles, total, err := repo.List(ctx, 7, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, vehicles, 2)
	// Most recently active first.
	assert.Equal(t, "LST003", vehicles[0].PlateNumber())
}

func TestVehicleRepository_ReassignBusiness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db, testLogger())
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	createTestVehicle(t, repo, 10, "MOV001", vehiclevo.VehicleClassCar, now)
	createTestVehicle(t, repo, 10, "MOV002", vehiclevo.VehicleClassMotorcycle, now)
	createTestVehicle(t, repo, 11, "STAY01", vehiclevo.VehicleClassCar, now)

	moved, err := repo.ReassignBusiness(ctx, 10, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	_, err = repo.FindByPlate(ctx, 10, "MOV001")
	assert.True(t, errors.IsNotFoundError(err))

	found, err := repo.FindByPlate(ctx, 12, "MOV002")
	require.NoError(t, err)
	assert.Equal(t, uint(12), found.BusinessID())

	// Unrelated business is untouched.
	moved, err = repo.ReassignBusiness(ctx, 99, 12)
	require.NoError(t, err)
	assert.Zero(t, moved)
}
