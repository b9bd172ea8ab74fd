package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type ListSessionsQuery struct {
	BusinessID uint
	DateStart  string
	DateEnd    string
	Page       int
	PageSize   int
}

type ListSessionsResult struct {
	Sessions []*dto.SessionResult `json:"sessions"`
	Total    int64                `json:"total"`
}

// ListSessionsUseCase pages through closed sessions whose exit falls inside
// a business-day range.
type ListSessionsUseCase struct {
	vehicleRepo vehicle.VehicleRepository
	sessionRepo parking.ParkingSessionRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewListSessionsUseCase(
	vehicleRepo vehicle.VehicleRepository,
	sessionRepo parking.ParkingSessionRepository,
	logger logger.Interface,
) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		vehicleRepo: vehicleRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) (*ListSessionsResult, error) {
	window, err := biztime.RangeWindow(query.DateStart, query.DateEnd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	sessions, total, err := uc.sessionRepo.ListClosedInWindow(ctx, query.BusinessID, window, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list sessions",
			"business_id", query.BusinessID, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	vehicleIDs := make([]uint, 0, len(sessions))
	for _, session := range sessions {
		vehicleIDs = append(vehicleIDs, session.VehicleID())
	}
	vehicles, err := uc.vehicleRepo.FindByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session vehicles: %w", err)
	}

	now := uc.now()
	results := make([]*dto.SessionResult, 0, len(sessions))
	for _, session := range sessions {
		// A missing registry row still lists the session, just without
		// plate and class.
		results = append(results, dto.NewSessionResult(session, vehicles[session.VehicleID()], now))
	}

	return &ListSessionsResult{Sessions: results, Total: total}, nil
}
