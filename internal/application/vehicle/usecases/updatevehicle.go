package usecases

import (
	"context"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/vehicle/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type UpdateVehicleCommand struct {
	BusinessID uint
	SID        string
	Class      *string
	OwnerName  *string
	Phone      *string
}

// UpdateVehicleUseCase edits the mutable registry fields: class and owner
// contact. A class change only affects how future sessions are grouped in
// reports; history keeps the class it was recorded under at close.
type UpdateVehicleUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewUpdateVehicleUseCase(
	vehicleRepo vehicle.VehicleRepository,
	logger logger.Interface,
) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock overrides the time source.
func (uc *UpdateVehicleUseCase) WithClock(now func() time.Time) *UpdateVehicleUseCase {
	uc.now = now
	return uc
}

func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, cmd UpdateVehicleCommand) (*dto.VehicleResult, error) {
	if err := id.ValidatePrefix(cmd.SID, id.PrefixVehicle); err != nil {
		return nil, errors.NewValidationError("invalid vehicle ID format")
	}

	v, err := uc.vehicleRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}
	if cmd.BusinessID != 0 && v.BusinessID() != cmd.BusinessID {
		return nil, errors.NewNotFoundError("vehicle not found")
	}

	now := uc.now()

	if cmd.Class != nil {
		class, err := vehiclevo.NewVehicleClass(*cmd.Class)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := v.UpdateClass(class, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.OwnerName != nil || cmd.Phone != nil {
		name := v.OwnerName()
		phone := v.Phone()
		if cmd.OwnerName != nil {
			name = *cmd.OwnerName
		}
		if cmd.Phone != nil {
			phone = *cmd.Phone
		}
		v.UpdateContact(name, phone, now)
	}

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		uc.logger.Errorw("failed to update vehicle", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("vehicle updated", "sid", cmd.SID)
	return dto.NewVehicleResult(v), nil
}
