package usecases

import (
	"context"

	"github.com/parkgate-inc/parkgate/internal/application/vehicle/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type GetVehicleByPlateQuery struct {
	BusinessID  uint
	PlateNumber string
}

// GetVehicleByPlateUseCase looks a registry record up by its plate.
type GetVehicleByPlateUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	logger      logger.Interface
}

func NewGetVehicleByPlateUseCase(
	vehicleRepo vehicle.VehicleRepository,
	logger logger.Interface,
) *GetVehicleByPlateUseCase {
	return &GetVehicleByPlateUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *GetVehicleByPlateUseCase) Execute(ctx context.Context, query GetVehicleByPlateQuery) (*dto.VehicleResult, error) {
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

	return dto.NewVehicleResult(v), nil
}
