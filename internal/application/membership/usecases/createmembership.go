package usecases

import (
	"context"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/membership/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type CreateMembershipCommand struct {
	BusinessID   uint
	PlateNumber  string
	VehicleClass string
	OwnerName    string
	OwnerPhone   string
	ValueCents   int64
	EndsAt       *time.Time
}

// CreateMembershipUseCase sells a membership for a plate, registering the
// vehicle on the spot when it is new. Coverage starts immediately but only
// applies to sessions opened from now on; an open session keeps the coverage
// it was pinned with at entry.
type CreateMembershipUseCase struct {
	vehicleRepo    vehicle.VehicleRepository
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
	now            func() time.Time
}

func NewCreateMembershipUseCase(
	vehicleRepo vehicle.VehicleRepository,
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *CreateMembershipUseCase {
	return &CreateMembershipUseCase{
		vehicleRepo:    vehicleRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

// WithClock overrides the time source.
func (uc *CreateMembershipUseCase) WithClock(now func() time.Time) *CreateMembershipUseCase {
	uc.now = now
	return uc
}

func (uc *CreateMembershipUseCase) Execute(ctx context.Context, cmd CreateMembershipCommand) (*dto.MembershipResult, error) {
	if cmd.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}
	plate := vehicle.CanonicalPlate(cmd.PlateNumber)
	if plate == "" {
		return nil, errors.NewValidationError("plate number is required")
	}

	now := uc.now()

	v, err := uc.vehicleRepo.FindByPlate(ctx, cmd.BusinessID, plate)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		v, err = uc.registerVehicle(ctx, cmd, plate, now)
		if err != nil {
			return nil, err
		}
	}

	// One active membership per vehicle at a time.
	if _, err := uc.membershipRepo.FindActiveForVehicle(ctx, cmd.BusinessID, v.ID(), now); err == nil {
		return nil, errors.NewConflictError("vehicle already has an active membership")
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	m, err := membership.NewMembership(cmd.BusinessID, v.ID(), cmd.ValueCents, cmd.EndsAt, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.membershipRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create membership",
			"business_id", cmd.BusinessID, "plate", plate, "error", err)
		return nil, err
	}

	uc.logger.Infow("membership created",
		"business_id", cmd.BusinessID, "plate", plate, "sid", m.SID(),
		"value_cents", m.ValueCents())
	return dto.NewMembershipResult(m, v), nil
}

func (uc *CreateMembershipUseCase) registerVehicle(ctx context.Context, cmd CreateMembershipCommand, plate string, now time.Time) (*vehicle.Vehicle, error) {
	class := vehiclevo.VehicleClassCar
	if cmd.VehicleClass != "" {
		parsed, err := vehiclevo.NewVehicleClass(cmd.VehicleClass)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		class = parsed
	}

	v, err := vehicle.NewVehicle(cmd.BusinessID, plate, class, now)
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
