package handlers

import (
	"context"

	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
)

// Use case interfaces for AdminHandler

type reassignTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReassignTenantCommand) (*usecases.ReassignTenantResult, error)
}
