package mappers

import (
	"fmt"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
)

// VehicleMapper handles the conversion between domain entities and persistence models.
type VehicleMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.VehicleModel) (*vehicle.Vehicle, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *vehicle.Vehicle) (*models.VehicleModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.VehicleModel) ([]*vehicle.Vehicle, error)
}

// VehicleMapperImpl is the concrete implementation of VehicleMapper.
type VehicleMapperImpl struct{}

// NewVehicleMapper creates a new vehicle mapper.
func NewVehicleMapper() VehicleMapper {
	return &VehicleMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *VehicleMapperImpl) ToEntity(model *models.VehicleModel) (*vehicle.Vehicle, error) {
	if model == nil {
		return nil, nil
	}

	class := vehiclevo.VehicleClass(model.Class)
	if !class.IsValid() {
		return nil, fmt.Errorf("invalid vehicle class: %s", model.Class)
	}

	return vehicle.ReconstructVehicle(
		model.ID,
		model.SID,
		model.BusinessID,
		model.PlateNumber,
		class,
		model.InParking,
		model.LastActivityAt,
		model.OwnerName,
		model.Phone,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *VehicleMapperImpl) ToModel(entity *vehicle.Vehicle) (*models.VehicleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.VehicleModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		BusinessID:     entity.BusinessID(),
		PlateNumber:    entity.PlateNumber(),
		Class:          entity.Class().String(),
		InParking:      entity.InParking(),
		LastActivityAt: entity.LastActivityAt(),
		OwnerName:      entity.OwnerName(),
		Phone:          entity.Phone(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *VehicleMapperImpl) ToEntities(vehicleModels []*models.VehicleModel) ([]*vehicle.Vehicle, error) {
	entities := make([]*vehicle.Vehicle, 0, len(vehicleModels))
	for _, model := range vehicleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
