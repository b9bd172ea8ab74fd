package handlers

import (
	"context"

	parkingdto "github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
)

// Use case interfaces for ParkingHandler

type openSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.OpenSessionCommand) (*parkingdto.SessionResult, error)
}

type closeSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CloseSessionCommand) (*parkingdto.SessionResult, error)
}

type getOpenSessionUseCase interface {
	Execute(ctx context.Context, query usecases.GetOpenSessionQuery) (*parkingdto.SessionResult, error)
}

type listSessionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSessionsQuery) (*usecases.ListSessionsResult, error)
}

type softDeleteSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.SoftDeleteSessionCommand) (*parkingdto.SessionResult, error)
}
