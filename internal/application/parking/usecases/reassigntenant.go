package usecases

import (
	"context"

	"github.com/parkgate-inc/parkgate/internal/domain/business"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type ReassignTenantCommand struct {
	FromBusinessSID string
	ToBusinessSID   string
}

type ReassignTenantResult struct {
	Vehicles        int64 `json:"vehicles"`
	ParkingSessions int64 `json:"parking_sessions"`
	Memberships     int64 `json:"memberships"`
}

// ReassignTenantUseCase moves every record of one business to another. Both
// businesses are validated up front; the collection updates then run one by
// one without a wrapping transaction. A failure partway returns the partial
// per-collection counts alongside the error, so the caller can see what
// moved and retry: the updates are idempotent, rerunning moves whatever is
// left.
type ReassignTenantUseCase struct {
	businessRepo   business.BusinessRepository
	vehicleRepo    vehicle.VehicleRepository
	sessionRepo    parking.ParkingSessionRepository
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
}

func NewReassignTenantUseCase(
	businessRepo business.BusinessRepository,
	vehicleRepo vehicle.VehicleRepository,
	sessionRepo parking.ParkingSessionRepository,
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *ReassignTenantUseCase {
	return &ReassignTenantUseCase{
		businessRepo:   businessRepo,
		vehicleRepo:    vehicleRepo,
		sessionRepo:    sessionRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *ReassignTenantUseCase) Execute(ctx context.Context, cmd ReassignTenantCommand) (*ReassignTenantResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	from, err := uc.businessRepo.FindBySID(ctx, cmd.FromBusinessSID)
	if err != nil {
		return nil, err
	}
	to, err := uc.businessRepo.FindBySID(ctx, cmd.ToBusinessSID)
	if err != nil {
		return nil, err
	}

	result := &ReassignTenantResult{}

	result.Vehicles, err = uc.vehicleRepo.ReassignBusiness(ctx, from.ID(), to.ID())
	if err != nil {
		return nil, err
	}

	result.ParkingSessions, err = uc.sessionRepo.ReassignBusiness(ctx, from.ID(), to.ID())
	if err != nil {
		uc.logger.Errorw("tenant reassignment interrupted after vehicles moved",
			"from", cmd.FromBusinessSID, "to", cmd.ToBusinessSID,
			"vehicles_moved", result.Vehicles, "error", err)
		return result, err
	}

	result.Memberships, err = uc.membershipRepo.ReassignBusiness(ctx, from.ID(), to.ID())
	if err != nil {
		uc.logger.Errorw("tenant reassignment interrupted after sessions moved",
			"from", cmd.FromBusinessSID, "to", cmd.ToBusinessSID,
			"vehicles_moved", result.Vehicles, "sessions_moved", result.ParkingSessions,
			"error", err)
		return result, err
	}

	uc.logger.Infow("tenant reassigned",
		"from", cmd.FromBusinessSID, "to", cmd.ToBusinessSID,
		"vehicles", result.Vehicles,
		"parking_sessions", result.ParkingSessions,
		"memberships", result.Memberships)
	return result, nil
}

func (uc *ReassignTenantUseCase) validateCommand(cmd ReassignTenantCommand) error {
	if err := id.ValidatePrefix(cmd.FromBusinessSID, id.PrefixBusiness); err != nil {
		return errors.NewValidationError("invalid source business ID format")
	}
	if err := id.ValidatePrefix(cmd.ToBusinessSID, id.PrefixBusiness); err != nil {
		return errors.NewValidationError("invalid target business ID format")
	}
	if cmd.FromBusinessSID == cmd.ToBusinessSID {
		return errors.NewValidationError("source and target business must differ")
	}
	return nil
}
