package usecases

import (
	"context"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type GetOpenSessionQuery struct {
	BusinessID  uint
	PlateNumber string
}

// GetOpenSessionUseCase shows the live state of a parked vehicle without
// touching it: elapsed minutes are computed against the clock and nothing is
// persisted.
type GetOpenSessionUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	sessionRepo parking.ParkingSessionRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewGetOpenSessionUseCase(
	vehicleRepo vehicle.VehicleRepository,
	sessionRepo parking.ParkingSessionRepository,
	logger logger.Interface,
) *GetOpenSessionUseCase {
	return &GetOpenSessionUseCase{
		vehicleRepo: vehicleRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock overrides the time source used for live durations.
func (uc *GetOpenSessionUseCase) WithClock(now func() time.Time) *GetOpenSessionUseCase {
	uc.now = now
	return uc
}

func (uc *GetOpenSessionUseCase) Execute(ctx context.Context, query GetOpenSessionQuery) (*dto.SessionResult, error) {
	if query.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}
	plate := vehicle.CanonicalPlate(query.PlateNumber)
	if plate == "" {
		return nil, errors.NewValidationError("plate number is required")
	}

	v, err := uc.vehicleRepo.FindByPlate(ctx, query.BusinessID, plate)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessionRepo.FindOpenByVehicle(ctx, query.BusinessID, v.ID())
	if err != nil {
		return nil, err
	}

	return dto.NewSessionResult(session, v, uc.now()), nil
}
