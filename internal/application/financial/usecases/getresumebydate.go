package usecases

import (
	"context"
	"fmt"

	"github.com/parkgate-inc/parkgate/internal/application/financial/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/billing"
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

type GetResumeByDateQuery struct {
	BusinessID uint
	Date       string
}

// GetResumeByDateUseCase computes the financial summary for one business
// day. The window is the calendar date shifted by the business-day offset,
// so a 2 a.m. local close lands on the operating day it belongs to.
type GetResumeByDateUseCase struct {
	sessionRepo    parking.ParkingSessionRepository
	membershipRepo membership.MembershipRepository
	logger         logger.Interface
}

func NewGetResumeByDateUseCase(
	sessionRepo parking.ParkingSessionRepository,
	membershipRepo membership.MembershipRepository,
	logger logger.Interface,
) *GetResumeByDateUseCase {
	return &GetResumeByDateUseCase{
		sessionRepo:    sessionRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *GetResumeByDateUseCase) Execute(ctx context.Context, query GetResumeByDateQuery) (*dto.ResumeResult, error) {
	if query.BusinessID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}

	window, err := biztime.DayWindow(query.Date)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result, err := computeResume(ctx, uc.sessionRepo, uc.membershipRepo, query.BusinessID, window, query.Date, query.Date)
	if err != nil {
		uc.logger.Errorw("failed to compute daily resume",
			"business_id", query.BusinessID, "date", query.Date, "error", err)
		return nil, err
	}

	return result, nil
}

// computeResume runs the three window aggregates and folds them into the
// response. Shared by the single-day and range variants.
func computeResume(
	ctx context.Context,
	sessionRepo parking.ParkingSessionRepository,
	membershipRepo membership.MembershipRepository,
	businessID uint,
	window biztime.Window,
	dateStart, dateEnd string,
) (*dto.ResumeResult, error) {
	paid, err := sessionRepo.SummarizePaidInWindow(ctx, businessID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize paid sessions: %w", err)
	}

	breakdown, err := sessionRepo.ClassBreakdownInWindow(ctx, businessID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute class breakdown: %w", err)
	}

	sales, err := membershipRepo.SummarizeCreatedInWindow(ctx, businessID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize membership sales: %w", err)
	}

	return dto.NewResumeResult(dateStart, dateEnd, billing.DefaultCurrency, paid, breakdown, sales), nil
}
