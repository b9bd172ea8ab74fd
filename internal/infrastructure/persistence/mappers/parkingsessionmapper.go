package mappers

import (
	"fmt"

	"github.com/parkgate-inc/parkgate/internal/domain/billing"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	parkingvo "github.com/parkgate-inc/parkgate/internal/domain/parking/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
)

// ParkingSessionMapper handles the conversion between domain entities and persistence models.
type ParkingSessionMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.ParkingSessionModel) (*parking.ParkingSession, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *parking.ParkingSession) (*models.ParkingSessionModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.ParkingSessionModel) ([]*parking.ParkingSession, error)
}

// ParkingSessionMapperImpl is the concrete implementation of ParkingSessionMapper.
type ParkingSessionMapperImpl struct{}

// NewParkingSessionMapper creates a new parking session mapper.
func NewParkingSessionMapper() ParkingSessionMapper {
	return &ParkingSessionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ParkingSessionMapperImpl) ToEntity(model *models.ParkingSessionModel) (*parking.ParkingSession, error) {
	if model == nil {
		return nil, nil
	}

	var method *parkingvo.PaymentMethod
	if model.PaymentMethod != nil {
		parsed, err := parkingvo.NewPaymentMethod(*model.PaymentMethod)
		if err != nil {
			return nil, fmt.Errorf("failed to map session %s: %w", model.SID, err)
		}
		method = &parsed
	}

	return parking.ReconstructParkingSession(
		model.ID,
		model.SID,
		model.BusinessID,
		model.VehicleID,
		model.EntryTime,
		model.ExitTime,
		model.DurationMinutes,
		billing.NewMoney(model.CostCents, model.Currency),
		model.HasMembership,
		model.MembershipID,
		method,
		model.DeletedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model. The open-slot
// column is derived here: the vehicle ID while the session is open and not
// deleted, NULL otherwise, so the unique index only guards live open rows.
func (m *ParkingSessionMapperImpl) ToModel(entity *parking.ParkingSession) (*models.ParkingSessionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var openSlot *uint
	if entity.IsOpen() && !entity.IsDeleted() {
		vehicleID := entity.VehicleID()
		openSlot = &vehicleID
	}

	var method *string
	if entity.PaymentMethod() != nil {
		value := entity.PaymentMethod().String()
		method = &value
	}

	return &models.ParkingSessionModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		BusinessID:      entity.BusinessID(),
		VehicleID:       entity.VehicleID(),
		EntryTime:       entity.EntryTime(),
		ExitTime:        entity.ExitTime(),
		DurationMinutes: entity.DurationMinutes(),
		CostCents:       entity.Cost().AmountInCents(),
		Currency:        entity.Cost().Currency(),
		HasMembership:   entity.HasMembership(),
		MembershipID:    entity.MembershipID(),
		PaymentMethod:   method,
		OpenSlot:        openSlot,
		DeletedAt:       entity.DeletedAt(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ParkingSessionMapperImpl) ToEntities(sessionModels []*models.ParkingSessionModel) ([]*parking.ParkingSession, error) {
	entities := make([]*parking.ParkingSession, 0, len(sessionModels))
	for _, model := range sessionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
