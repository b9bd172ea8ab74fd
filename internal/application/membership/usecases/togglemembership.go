package usecases

import (
	"context"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/membership/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type ToggleMembershipCommand struct {
	BusinessID uint
	SID        string
	Enabled    bool
}

// ToggleMembershipUseCase enables or disables a membership. The change only
// affects future entries; sessions already open keep their pinned coverage.
type ToggleMembershipUseCase struct {
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
	now            func() time.Time
}

func NewToggleMembershipUseCase(
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *ToggleMembershipUseCase {
	return &ToggleMembershipUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

// WithClock overrides the time source.
func (uc *ToggleMembershipUseCase) WithClock(now func() time.Time) *ToggleMembershipUseCase {
	uc.now = now
	return uc
}

func (uc *ToggleMembershipUseCase) Execute(ctx context.Context, cmd ToggleMembershipCommand) (*dto.MembershipResult, error) {
	if err := id.ValidatePrefix(cmd.SID, id.PrefixMembership); err != nil {
		return nil, errors.NewValidationError("invalid membership ID format")
	}

	m, err := uc.membershipRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}
	if cmd.BusinessID != 0 && m.BusinessID() != cmd.BusinessID {
		return nil, errors.NewNotFoundError("membership not found")
	}

	m.SetEnabled(cmd.Enabled, uc.now())
	if err := uc.membershipRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to toggle membership", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("membership toggled", "sid", cmd.SID, "enabled", cmd.Enabled)
	return dto.NewMembershipResult(m, nil), nil
}
