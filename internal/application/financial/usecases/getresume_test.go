package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockSessionAggregates struct {
	mock.Mock
	parking.ParkingSessionRepository
}

func (m *mockSessionAggregates) SummarizePaidInWindow(ctx context.Context, businessID uint, window biztime.Window) (*parking.PaidSummary, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parking.PaidSummary), args.Error(1)
}

func (m *mockSessionAggregates) ClassBreakdownInWindow(ctx context.Context, businessID uint, window biztime.Window) ([]parking.ClassAggregate, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]parking.ClassAggregate), args.Error(1)
}

type mockMembershipAggregates struct {
	mock.Mock
	membership.MembershipRepository
}

func (m *mockMembershipAggregates) SummarizeCreatedInWindow(ctx context.Context, businessID uint, window biztime.Window) (*membership.Summary, error) {
	args := m.Called(ctx, businessID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Summary), args.Error(1)
}

func TestGetResumeByDateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("folds the window aggregates", func(t *testing.T) {
		sessionRepo := new(mockSessionAggregates)
		membershipRepo := new(mockMembershipAggregates)

		window, err := biztime.DayWindow("2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC), window.Start)

		sessionRepo.On("SummarizePaidInWindow", mock.Anything, uint(1), window).
			Return(&parking.PaidSummary{TotalCents: 12000, Count: 2, AverageCents: 6000}, nil)
		sessionRepo.On("ClassBreakdownInWindow", mock.Anything, uint(1), window).
			Return([]parking.ClassAggregate{
				{Class: "car", Count: 1, TotalCents: 9000},
				{Class: "motorcycle", Count: 1, TotalCents: 3000},
			}, nil)
		membershipRepo.On("SummarizeCreatedInWindow", mock.Anything, uint(1), window).
			Return(&membership.Summary{
				Total: 3, Cars: 2, Motorcycles: 1,
				TotalCents: 450000, AverageCents: 150000,
			}, nil)

		uc := NewGetResumeByDateUseCase(sessionRepo, membershipRepo, discardLogger())

		result, err := uc.Execute(ctx, GetResumeByDateQuery{BusinessID: 1, Date: "2024-03-10"})
		require.NoError(t, err)
		assert.Equal(t, int64(12000), result.TotalCents)
		assert.Equal(t, int64(2), result.SessionCount)
		assert.Equal(t, int64(6000), result.AverageCents)
		assert.Equal(t, int64(9000), result.Cars.TotalCents)
		assert.Equal(t, int64(3000), result.Motorcycles.TotalCents)
		assert.Equal(t, int64(3), result.Memberships.Total)
		assert.Equal(t, int64(450000), result.Memberships.TotalCents)
		assert.Equal(t, int64(150000), result.Memberships.AverageCents)
		// Sessions plus membership sales.
		assert.Equal(t, int64(462000), result.TotalRevenueCents)
		assert.Equal(t, "2024-03-10", result.DateStart)
		assert.Equal(t, "2024-03-10", result.DateEnd)
	})

	t.Run("empty day yields all zeroes", func(t *testing.T) {
		sessionRepo := new(mockSessionAggregates)
		membershipRepo := new(mockMembershipAggregates)

		window, err := biztime.DayWindow("2020-01-01")
		require.NoError(t, err)

		sessionRepo.On("SummarizePaidInWindow", mock.Anything, uint(1), window).
			Return(&parking.PaidSummary{}, nil)
		sessionRepo.On("ClassBreakdownInWindow", mock.Anything, uint(1), window).
			Return([]parking.ClassAggregate{}, nil)
		membershipRepo.On("SummarizeCreatedInWindow", mock.Anything, uint(1), window).
			Return(&membership.Summary{}, nil)

		uc := NewGetResumeByDateUseCase(sessionRepo, membershipRepo, discardLogger())

		result, err := uc.Execute(ctx, GetResumeByDateQuery{BusinessID: 1, Date: "2020-01-01"})
		require.NoError(t, err)
		assert.Zero(t, result.TotalCents)
		assert.Zero(t, result.AverageCents)
		assert.Zero(t, result.Cars.Count)
		assert.Zero(t, result.Memberships.Total)
		assert.Zero(t, result.Memberships.TotalCents)
		assert.Zero(t, result.Memberships.AverageCents)
		assert.Zero(t, result.TotalRevenueCents)
	})

	t.Run("a window without membership sales still reports session revenue", func(t *testing.T) {
		sessionRepo := new(mockSessionAggregates)
		membershipRepo := new(mockMembershipAggregates)

		window, err := biztime.DayWindow("2024-03-11")
		require.NoError(t, err)

		sessionRepo.On("SummarizePaidInWindow", mock.Anything, uint(1), window).
			Return(&parking.PaidSummary{TotalCents: 7000, Count: 1, AverageCents: 7000}, nil)
		sessionRepo.On("ClassBreakdownInWindow", mock.Anything, uint(1), window).
			Return([]parking.ClassAggregate{{Class: "car", Count: 1, TotalCents: 7000}}, nil)
		membershipRepo.On("SummarizeCreatedInWindow", mock.Anything, uint(1), window).
			Return(&membership.Summary{}, nil)

		uc := NewGetResumeByDateUseCase(sessionRepo, membershipRepo, discardLogger())

		result, err := uc.Execute(ctx, GetResumeByDateQuery{BusinessID: 1, Date: "2024-03-11"})
		require.NoError(t, err)
		assert.Equal(t, int64(7000), result.TotalRevenueCents)
		assert.Zero(t, result.Memberships.TotalCents)
		assert.Zero(t, result.Memberships.AverageCents)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		uc := NewGetResumeByDateUseCase(new(mockSessionAggregates), new(mockMembershipAggregates), discardLogger())

		_, err := uc.Execute(ctx, GetResumeByDateQuery{BusinessID: 1, Date: "10-03-2024"})
		assert.Error(t, err)
	})
}

func TestGetResumeByRangeUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("spans the inclusive range", func(t *testing.T) {
		sessionRepo := new(mockSessionAggregates)
		membershipRepo := new(mockMembershipAggregates)

		window, err := biztime.RangeWindow("2024-03-01", "2024-03-31")
		require.NoError(t, err)

		sessionRepo.On("SummarizePaidInWindow", mock.Anything, uint(1), window).
			Return(&parking.PaidSummary{TotalCents: 50000, Count: 10, AverageCents: 5000}, nil)
		sessionRepo.On("ClassBreakdownInWindow", mock.Anything, uint(1), window).
			Return([]parking.ClassAggregate{}, nil)
		membershipRepo.On("SummarizeCreatedInWindow", mock.Anything, uint(1), window).
			Return(&membership.Summary{}, nil)

		uc := NewGetResumeByRangeUseCase(sessionRepo, membershipRepo, discardLogger())

		result, err := uc.Execute(ctx, GetResumeByRangeQuery{BusinessID: 1, DateStart: "2024-03-01", DateEnd: "2024-03-31"})
		require.NoError(t, err)
		assert.Equal(t, int64(50000), result.TotalCents)
		assert.Equal(t, int64(50000), result.TotalRevenueCents)
		assert.Equal(t, "2024-03-01", result.DateStart)
		assert.Equal(t, "2024-03-31", result.DateEnd)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		uc := NewGetResumeByRangeUseCase(new(mockSessionAggregates), new(mockMembershipAggregates), discardLogger())

		_, err := uc.Execute(ctx, GetResumeByRangeQuery{BusinessID: 1, DateStart: "2024-03-31", DateEnd: "2024-03-01"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
