package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type OpenSessionCommand struct {
	BusinessID   uint
	PlateNumber  string
	VehicleClass string
	OwnerName    string
	OwnerPhone   string
}

// OpenSessionUseCase admits a vehicle: it registers the plate on first
// sight, checks membership coverage, flips the parked flag and opens the
// ledger row. The conditional flag update and the unique open slot make a
// concurrent double entry lose no matter how the two requests interleave.
type OpenSessionUseCase struct {
	vehicleRepo    vehicle.VehicleRepository
	sessionRepo    parking.ParkingSessionRepository
	membershipRepo membership.MembershipRepository
	txManager      TransactionManager
	logger         logger.Interface
	now            func() time.Time
}

func NewOpenSessionUseCase(
	vehicleRepo vehicle.VehicleRepository,
	sessionRepo parking.ParkingSessionRepository,
	membershipRepo membership.MembershipRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *OpenSessionUseCase {
	return &OpenSessionUseCase{
		vehicleRepo:    vehicleRepo,
		sessionRepo:    sessionRepo,
		membershipRepo: membershipRepo,
		txManager:      txManager,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

// WithClock overrides the time source. Tests use it to pin entry timestamps.
func (uc *OpenSessionUseCase) WithClock(now func() time.Time) *OpenSessionUseCase {
	uc.now = now
	return uc
}

func (uc *OpenSessionUseCase) Execute(ctx context.Context, cmd OpenSessionCommand) (*dto.SessionResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	now := uc.now()
	plate := vehicle.CanonicalPlate(cmd.PlateNumber)

	var result *dto.SessionResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		v, err := uc.findOrCreateVehicle(txCtx, cmd, plate, now)
		if err != nil {
			return err
		}

		// Conditional flip: fails with a conflict when already parked.
		if err := uc.vehicleRepo.SetParked(txCtx, v.ID(), now); err != nil {
			return err
		}
		v.MarkParked(now)

		hasMembership := false
		var membershipID *uint
		if active, err := uc.membershipRepo.FindActiveForVehicle(txCtx, cmd.BusinessID, v.ID(), now); err == nil {
			hasMembership = true
			id := active.ID()
			membershipID = &id
		} else if !errors.IsNotFoundError(err) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		session, err := parking.NewParkingSession(cmd.BusinessID, v.ID(), hasMembership, membershipID, now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.sessionRepo.Create(txCtx, session); err != nil {
			return err
		}

		result = dto.NewSessionResult(session, v, now)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to open parking session",
			"business_id", cmd.BusinessID, "plate", plate, "error", err)
		return nil, err
	}

	uc.logger.Infow("parking session opened",
		"business_id", cmd.BusinessID, "plate", plate, "sid", result.SID,
		"has_membership", result.HasMembership)
	return result, nil
}

func (uc *OpenSessionUseCase) findOrCreateVehicle(ctx context.Context, cmd OpenSessionCommand, plate string, now time.Time) (*vehicle.Vehicle, error) {
	v, err := uc.vehicleRepo.FindByPlate(ctx, cmd.BusinessID, plate)
	if err == nil {
		return v, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}

	class := vehiclevo.VehicleClassCar
	if cmd.VehicleClass != "" {
		parsed, err := vehiclevo.NewVehicleClass(cmd.VehicleClass)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		class = parsed
	}

	v, err = vehicle.NewVehicle(cmd.BusinessID, plate, class, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.OwnerName != "" || cmd.OwnerPhone != "" {
		v.UpdateContact(cmd.OwnerName, cmd.OwnerPhone, now)
	}

	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *OpenSessionUseCase) validateCommand(cmd OpenSessionCommand) error {
	if cmd.BusinessID == 0 {
		return errors.NewValidationError("business ID is required")
	}
	if vehicle.CanonicalPlate(cmd.PlateNumber) == "" {
		return errors.NewValidationError("plate number is required")
	}
	return nil
}
