package usecases

import (
	"context"

	"github.com/parkgate-inc/parkgate/internal/application/financial/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type GetResumeByRangeQuery struct {
	BusinessID uint
	DateStart  string
	DateEnd    string
}

// GetResumeByRangeUseCase computes the financial summary over an inclusive
// span of business days: from the start date's window opening to the end
// date's window closing.
type GetResumeByRangeUseCase struct {
	sessionRepo    parking.ParkingSessionRepository
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
}

func NewGetResumeByRangeUseCase(
	sessionRepo parking.ParkingSessionRepository,
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *GetResumeByRangeUseCase {
	return &GetResumeByRangeUseCase{
		sessionRepo:    sessionRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *GetResumeByRangeUseCase) Execute(ctx context.Context, query GetResumeByRangeQuery) (*dto.ResumeResult, error) {
	if query.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}

	window, err := biztime.RangeWindow(query.DateStart, query.DateEnd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result, err := computeResume(ctx, uc.sessionRepo, uc.membershipRepo, query.BusinessID, window, query.DateStart, query.DateEnd)
	if err != nil {
		uc.logger.Errorw("failed to compute range resume",
			"business_id", query.BusinessID,
			"date_start", query.DateStart, "date_end", query.DateEnd, "error", err)
		return nil, err
	}

	return result, nil
}
