package handlers

import (
	"context"

	vehicledto "github.com/parkgate-inc/parkgate/internal/application/vehicle/dto"
	"github.com/parkgate-inc/parkgate/internal/application/vehicle/usecases"
)

// Use case interfaces for VehicleHandler

type listVehiclesUseCase interface {
	Execute(ctx context.Context, query usecases.ListVehiclesQuery) (*usecases.ListVehiclesResult, error)
}

type getVehicleByPlateUseCase interface {
	Execute(ctx context.Context, query usecases.GetVehicleByPlateQuery) (*vehicledto.VehicleResult, error)
}

type updateVehicleUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateVehicleCommand) (*vehicledto.VehicleResult, error)
}
