package usecases

import (
	"context"
	"fmt"

	"github.com/parkgate-inc/parkgate/internal/application/membership/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type ListMembershipsQuery struct {
	BusinessID uint
	VehicleSID string
	Page       int
	PageSize   int
}

type ListMembershipsResult struct {
	Memberships []*dto.MembershipResult `json:"memberships"`
	Total       int64                   `json:"total"`
}

// ListMembershipsUseCase pages through the memberships of a business with
// their plates resolved.
type ListMembershipsUseCase struct {
	vehicleRepo    vehicle.VehicleRepository
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
}

func NewListMembershipsUseCase(
	vehicleRepo vehicle.VehicleRepository,
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *ListMembershipsUseCase {
	return &ListMembershipsUseCase{
		vehicleRepo:    vehicleRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *ListMembershipsUseCase) Execute(ctx context.Context, query ListMembershipsQuery) (*ListMembershipsResult, error) {
	if query.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	var vehicleID uint
	if query.VehicleSID != "" {
		if err := id.ValidatePrefix(query.VehicleSID, id.PrefixVehicle); err != nil {
			return nil, errors.NewValidationError("invalid vehicle ID format")
		}
		v, err := uc.vehicleRepo.FindBySID(ctx, query.VehicleSID)
		if err != nil {
			return nil, err
		}
		if v.BusinessID() != query.BusinessID {
			return nil, errors.NewNotFoundError("vehicle not found")
		}
		vehicleID = v.ID()
	}

	memberships, total, err := uc.membershipRepo.List(ctx, query.BusinessID, vehicleID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list memberships",
			"business_id", query.BusinessID, "error", err)
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	vehicleIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		vehicleIDs = append(vehicleIDs, m.VehicleID())
	}
	vehicles, err := uc.vehicleRepo.FindByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership vehicles: %w", err)
	}

	results := make([]*dto.MembershipResult, 0, len(memberships))
	for _, m := range memberships {
		results = append(results, dto.NewMembershipResult(m, vehicles[m.VehicleID()]))
	}

	return &ListMembershipsResult{Memberships: results, Total: total}, nil
}
