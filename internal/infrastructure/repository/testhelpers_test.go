package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.BusinessModel{},
		&models.VehicleModel{},
		&models.ParkingSessionModel{},
		&models.MembershipModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func vehicleForTest(businessID uint, plate string, at time.Time) (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(businessID, plate, vehiclevo.VehicleClassCar, at)
}

func createTestVehicle(t *testing.T, repo vehicle.VehicleRepository, businessID uint, plate string, class vehiclevo.VehicleClass, at time.Time) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(businessID, plate, class, at)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}
