package handlers

import (
	"context"

	financialdto "github.com/parkgate-inc/parkgate/internal/application/financial/dto"
	"github.com/parkgate-inc/parkgate/internal/application/financial/usecases"
)

// Use case interfaces for FinancialHandler

type getResumeByDateUseCase interface {
	Execute(ctx context.Context, query usecases.GetResumeByDateQuery) (*financialdto.ResumeResult, error)
}

type getResumeByRangeUseCase interface {
	Execute(ctx context.Context, query usecases.GetResumeByRangeQuery) (*financialdto.ResumeResult, error)
}
