package mappers

import (
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
)

// MembershipMapper handles the conversion between domain entities and persistence models.
type MembershipMapper interface {
	ToEntity(model *models.MembershipModel) (*membership.Membership, error)
	ToModel(entity *membership.Membership) (*models.MembershipModel, error)
	ToEntities(models []*models.MembershipModel) ([]*membership.Membership, error)
}

// MembershipMapperImpl is the concrete implementation of MembershipMapper.
type MembershipMapperImpl struct{}

// NewMembershipMapper creates a new membership mapper.
func NewMembershipMapper() MembershipMapper {
	return &MembershipMapperImpl{}
}

func (m *MembershipMapperImpl) ToEntity(model *models.MembershipModel) (*membership.Membership, error) {
	if model == nil {
		return nil, nil
	}

	return membership.ReconstructMembership(
		model.ID,
		model.SID,
		model.BusinessID,
		model.VehicleID,
		model.ValueCents,
		model.Enabled,
		model.StartsAt,
		model.EndsAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *MembershipMapperImpl) ToModel(entity *membership.Membership) (*models.MembershipModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MembershipModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		BusinessID: entity.BusinessID(),
		VehicleID:  entity.VehicleID(),
		ValueCents: entity.ValueCents(),
		Enabled:    entity.Enabled(),
		StartsAt:   entity.StartsAt(),
		EndsAt:     entity.EndsAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *MembershipMapperImpl) ToEntities(membershipModels []*models.MembershipModel) ([]*membership.Membership, error) {
	entities := make([]*membership.Membership, 0, len(membershipModels))
	for _, model := range membershipModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
