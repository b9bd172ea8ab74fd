package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type SoftDeleteSessionCommand struct {
	SID string
}

// SoftDeleteSessionUseCase strikes a session from reports and listings and
// returns the marked row. The row survives for audit and stays reachable by
// its SID; the vehicle's parked flag is untouched, deletion is not a
// checkout.
type SoftDeleteSessionUseCase struct {
	sessionRepo parking.ParkingSessionRepository
	vehicleRepo vehicle.VehicleRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewSoftDeleteSessionUseCase(
	sessionRepo parking.ParkingSessionRepository,
	vehicleRepo vehicle.VehicleRepository,
	logger logger.Interface,
) *SoftDeleteSessionUseCase {
	return &SoftDeleteSessionUseCase{
		sessionRepo: sessionRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock overrides the time source for the deletion timestamp.
func (uc *SoftDeleteSessionUseCase) WithClock(now func() time.Time) *SoftDeleteSessionUseCase {
	uc.now = now
	return uc
}

func (uc *SoftDeleteSessionUseCase) Execute(ctx context.Context, cmd SoftDeleteSessionCommand) (*dto.SessionResult, error) {
	if err := id.ValidatePrefix(cmd.SID, id.PrefixParkingSession); err != nil {
		return nil, errors.NewValidationError("invalid session ID format")
	}

	session, err := uc.sessionRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	if !session.IsDeleted() {
		session.SoftDelete(now)
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			uc.logger.Errorw("failed to soft delete session", "sid", cmd.SID, "error", err)
			return nil, err
		}
		uc.logger.Infow("parking session soft deleted", "sid", cmd.SID)
	}

	vehicles, err := uc.vehicleRepo.FindByIDs(ctx, []uint{session.VehicleID()})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session vehicle: %w", err)
	}

	// A missing registry row still returns the session, just without plate
	// and class.
	return dto.NewSessionResult(session, vehicles[session.VehicleID()], now), nil
}
