package mappers

import (
	"github.com/parkgate-inc/parkgate/internal/domain/business"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
)

// BusinessMapper handles the conversion between domain entities and persistence models.
type BusinessMapper interface {
	ToEntity(model *models.BusinessModel) (*business.Business, error)
	ToModel(entity *business.Business) (*models.BusinessModel, error)
}

// BusinessMapperImpl is the concrete implementation of BusinessMapper.
type BusinessMapperImpl struct{}

// NewBusinessMapper creates a new business mapper.
func NewBusinessMapper() BusinessMapper {
	return &BusinessMapperImpl{}
}

func (m *BusinessMapperImpl) ToEntity(model *models.BusinessModel) (*business.Business, error) {
	if model == nil {
		return nil, nil
	}

	return business.ReconstructBusiness(
		model.ID,
		model.SID,
		model.Name,
		model.Address,
		model.Phone,
		model.TaxID,
		model.Currency,
		business.RateTable{
			CarHourCents:         model.CarHourCents,
			CarMonthlyCents:      model.CarMonthlyCents,
			MotorcycleHourCents:  model.MotorcycleHourCents,
			MotorcycleMonthCents: model.MotorcycleMonthCents,
			NightSurchargeCents:  model.NightSurchargeCents,
		},
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *BusinessMapperImpl) ToModel(entity *business.Business) (*models.BusinessModel, error) {
	if entity == nil {
		return nil, nil
	}

	rates := entity.Rates()
	return &models.BusinessModel{
		ID:                   entity.ID(),
		SID:                  entity.SID(),
		Name:                 entity.Name(),
		Address:              entity.Address(),
		Phone:                entity.Phone(),
		TaxID:                entity.TaxID(),
		Currency:             entity.Currency(),
		CarHourCents:         rates.CarHourCents,
		CarMonthlyCents:      rates.CarMonthlyCents,
		MotorcycleHourCents:  rates.MotorcycleHourCents,
		MotorcycleMonthCents: rates.MotorcycleMonthCents,
		NightSurchargeCents:  rates.NightSurchargeCents,
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}, nil
}
