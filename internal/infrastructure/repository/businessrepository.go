package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parkgate-inc/parkgate/internal/domain/business"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/mappers"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
	"github.com/parkgate-inc/parkgate/internal/shared/db"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

// BusinessRepositoryImpl implements the business.BusinessRepository interface.
type BusinessRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BusinessMapper
	logger logger.Interface
}

// NewBusinessRepository creates a new business repository instance.
func NewBusinessRepository(database *gorm.DB, logger logger.Interface) business.BusinessRepository {
	return &BusinessRepositoryImpl{
		db:     database,
		mapper: mappers.NewBusinessMapper(),
		logger: logger,
	}
}

// Create creates a new business in the database.
func (r *BusinessRepositoryImpl) Create(ctx context.Context, b *business.Business) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to map business entity to model", "error", err)
		return fmt.Errorf("failed to map business entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("business already exists")
		}
		r.logger.Errorw("failed to create business in database", "error", err)
		return fmt.Errorf("failed to create business: %w", err)
	}

	b.SetID(model.ID)

	r.logger.Infow("business created", "id", model.ID, "name", model.Name)
	return nil
}

// Update updates an existing business.
func (r *BusinessRepositoryImpl) Update(ctx context.Context, b *business.Business) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to map business entity to model", "error", err)
		return fmt.Errorf("failed to map business entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.BusinessModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":                   model.Name,
			"address":                model.Address,
			"phone":                  model.Phone,
			"tax_id":                 model.TaxID,
			"currency":               model.Currency,
			"car_hour_cents":         model.CarHourCents,
			"car_monthly_cents":      model.CarMonthlyCents,
			"motorcycle_hour_cents":  model.MotorcycleHourCents,
			"motorcycle_month_cents": model.MotorcycleMonthCents,
			"night_surcharge_cents":  model.NightSurchargeCents,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update business", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update business: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("business not found")
	}

	return nil
}

// FindByID retrieves a business by its internal ID.
func (r *BusinessRepositoryImpl) FindByID(ctx context.Context, id uint) (*business.Business, error) {
	var model models.BusinessModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("business not found")
		}
		r.logger.Errorw("failed to get business by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindBySID retrieves a business by its public ID.
func (r *BusinessRepositoryImpl) FindBySID(ctx context.Context, sid string) (*business.Business, error) {
	var model models.BusinessModel

	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("business not found")
		}
		r.logger.Errorw("failed to get business by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
