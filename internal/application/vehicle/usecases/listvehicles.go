package usecases

import (
	"context"
	"fmt"

	"github.com/parkgate-inc/parkgate/internal/application/vehicle/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type ListVehiclesQuery struct {
	BusinessID uint
	Page       int
	PageSize   int
}

type ListVehiclesResult struct {
	Vehicles []*dto.VehicleResult `json:"vehicles"`
	Total    int64                `json:"total"`
}

// ListVehiclesUseCase pages through the registry of a business.
type ListVehiclesUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	logger      logger.Interface
}

func NewListVehiclesUseCase(
	vehicleRepo vehicle.VehicleRepository,
	logger logger.Interface,
) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *ListVehiclesUseCase) Execute(ctx context.Context, query ListVehiclesQuery) (*ListVehiclesResult, error) {
	if query.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	vehicles, total, err := uc.vehicleRepo.List(ctx, query.BusinessID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list vehicles",
			"business_id", query.BusinessID, "error", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	results := make([]*dto.VehicleResult, 0, len(vehicles))
	for _, v := range vehicles {
		results = append(results, dto.NewVehicleResult(v))
	}

	return &ListVehiclesResult{Vehicles: results, Total: total}, nil
}
