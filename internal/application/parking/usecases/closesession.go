package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/billing"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	parkingvo "github.com/parkgate-inc/parkgate/internal/domain/parking/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type CloseSessionCommand struct {
	BusinessID    uint
	PlateNumber   string
	CostCents     int64
	Currency      string
	PaymentMethod string
}

// CloseSessionUseCase checks a vehicle out: it closes the open ledger row
// with the operator-supplied price and releases the parked flag.
//
// When the registry says the vehicle is parked but the ledger has no open
// row, the flag is stale; the use case clears it so the next entry succeeds,
// and still reports not-found to the caller.
type CloseSessionUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	sessionRepo parking.ParkingSessionRepository
	txManager   TransactionManager
	logger      logger.Interface
	now         func() time.Time
}

func NewCloseSessionUseCase(
	vehicleRepo vehicle.VehicleRepository,
	sessionRepo parking.ParkingSessionRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CloseSessionUseCase {
	return &CloseSessionUseCase{
		vehicleRepo: vehicleRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock overrides the time source. Tests use it to pin exit timestamps.
func (uc *CloseSessionUseCase) WithClock(now func() time.Time) *CloseSessionUseCase {
	uc.now = now
	return uc
}

func (uc *CloseSessionUseCase) Execute(ctx context.Context, cmd CloseSessionCommand) (*dto.SessionResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	now := uc.now()
	plate := vehicle.CanonicalPlate(cmd.PlateNumber)

	v, err := uc.vehicleRepo.FindByPlate(ctx, cmd.BusinessID, plate)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessionRepo.FindOpenByVehicle(ctx, cmd.BusinessID, v.ID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Stale flag: heal it so the vehicle can enter again.
			if clearErr := uc.vehicleRepo.ClearParked(ctx, v.ID(), now); clearErr != nil {
				uc.logger.Errorw("failed to heal stale parked flag",
					"vehicle_id", v.ID(), "error", clearErr)
			}
			return nil, errors.NewNotFoundError("no open session for vehicle")
		}
		return nil, fmt.Errorf("failed to look up open session: %w", err)
	}

	var method *parkingvo.PaymentMethod
	if cmd.PaymentMethod != "" {
		parsed, err := parkingvo.NewPaymentMethod(cmd.PaymentMethod)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		method = &parsed
	}

	rate := billing.NewMoney(cmd.CostCents, cmd.Currency)
	if err := session.Close(now, rate, method); err != nil {
		return nil, err
	}
	v.ClearParked(now)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sessionRepo.Update(txCtx, session); err != nil {
			return err
		}
		return uc.vehicleRepo.ClearParked(txCtx, v.ID(), now)
	})
	if err != nil {
		uc.logger.Errorw("failed to close parking session",
			"business_id", cmd.BusinessID, "plate", plate, "error", err)
		return nil, err
	}

	uc.logger.Infow("parking session closed",
		"business_id", cmd.BusinessID, "plate", plate, "sid", session.SID(),
		"duration_minutes", session.DurationMinutes(),
		"cost_cents", session.Cost().AmountInCents())
	return dto.NewSessionResult(session, v, now), nil
}

func (uc *CloseSessionUseCase) validateCommand(cmd CloseSessionCommand) error {
	if cmd.BusinessID == 0 {
		return errors.NewValidationError("business ID is required")
	}
	if vehicle.CanonicalPlate(cmd.PlateNumber) == "" {
		return errors.NewValidationError("plate number is required")
	}
	if cmd.CostCents < 0 {
		return errors.NewValidationError("cost must not be negative")
	}
	return nil
}
