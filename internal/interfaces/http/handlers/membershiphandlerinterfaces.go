package handlers

import (
	"context"

	membershipdto "github.com/parkgate-inc/parkgate/internal/application/membership/dto"
	"github.com/parkgate-inc/parkgate/internal/application/membership/usecases"
)

// Use case interfaces for MembershipHandler

type createMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateMembershipCommand) (*membershipdto.MembershipResult, error)
}

type toggleMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleMembershipCommand) (*membershipdto.MembershipResult, error)
}

type listMembershipsUseCase interface {
	Execute(ctx context.Context, query usecases.ListMembershipsQuery) (*usecases.ListMembershipsResult, error)
}
