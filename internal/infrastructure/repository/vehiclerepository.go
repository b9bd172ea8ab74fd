package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/mappers"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
	"github.com/parkgate-inc/parkgate/internal/shared/db"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

// VehicleRepositoryImpl implements the vehicle.VehicleRepository interface.
type VehicleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.VehicleMapper
	logger logger.Interface
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(database *gorm.DB, logger logger.Interface) vehicle.VehicleRepository {
	return &VehicleRepositoryImpl{
		db:     database,
		mapper: mappers.NewVehicleMapper(),
		logger: logger,
	}
}

// Create creates a new vehicle in the database.
func (r *VehicleRepositoryImpl) Create(ctx context.Context, v *vehicle.Vehicle) error {
	model, err := r.mapper.ToModel(v)
	if err != nil {
		r.logger.Errorw("failed to map vehicle entity to model", "error", err)
		return fmt.Errorf("failed to map vehicle entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("vehicle already registered for this plate")
		}
		r.logger.Errorw("failed to create vehicle in database", "error", err)
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	v.SetID(model.ID)

	r.logger.Infow("vehicle created", "id", model.ID, "plate", model.PlateNumber)
	return nil
}

// Update updates an existing vehicle.
func (r *VehicleRepositoryImpl) Update(ctx context.Context, v *vehicle.Vehicle) error {
	model, err := r.mapper.ToModel(v)
	if err != nil {
		r.logger.Errorw("failed to map vehicle entity to model", "error", err)
		return fmt.Errorf("failed to map vehicle entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"class":            model.Class,
			"in_parking":       model.InParking,
			"last_activity_at": model.LastActivityAt,
			"owner_name":       model.OwnerName,
			"phone":            model.Phone,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update vehicle", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("vehicle not found")
	}

	return nil
}

// FindByPlate retrieves a vehicle by its canonical plate within a business.
func (r *VehicleRepositoryImpl) FindByPlate(ctx context.Context, businessID uint, plate string) (*vehicle.Vehicle, error) {
	var model models.VehicleModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("business_id = ? AND plate_number = ?", businessID, vehicle.CanonicalPlate(plate)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("vehicle not found")
		}
		r.logger.Errorw("failed to get vehicle by plate", "plate", plate, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindBySID retrieves a vehicle by its public ID.
func (r *VehicleRepositoryImpl) FindBySID(ctx context.Context, sid string) (*vehicle.Vehicle, error) {
	var model models.VehicleModel

	err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("vehicle not found")
		}
		r.logger.Errorw("failed to get vehicle by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindByIDs returns vehicles keyed by internal ID. Missing IDs are absent
// from the map rather than an error.
func (r *VehicleRepositoryImpl) FindByIDs(ctx context.Context, ids []uint) (map[uint]*vehicle.Vehicle, error) {
	if len(ids) == 0 {
		return make(map[uint]*vehicle.Vehicle), nil
	}

	var vehicleModels []*models.VehicleModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Find(&vehicleModels).Error; err != nil {
		r.logger.Errorw("failed to get vehicles by IDs", "error", err)
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	result := make(map[uint]*vehicle.Vehicle, len(vehicleModels))
	for _, model := range vehicleModels {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}

	return result, nil
}

// List pages through the vehicles of a business, most recently active first.
func (r *VehicleRepositoryImpl) List(ctx context.Context, businessID uint, offset, limit int) ([]*vehicle.Vehicle, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := conn.Model(&models.VehicleModel{}).
		Where("business_id = ?", businessID).
		Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count vehicles", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicleModels []*models.VehicleModel
	if err := conn.
		Where("business_id = ?", businessID).
		Order("last_activity_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&vehicleModels).Error; err != nil {
		r.logger.Errorw("failed to list vehicles", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	entities, err := r.mapper.ToEntities(vehicleModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// SetParked flips in_parking false -> true with a conditional update. A
// vehicle that is already parked leaves RowsAffected at zero, which is the
// double-entry signal regardless of how the race interleaved.
func (r *VehicleRepositoryImpl) SetParked(ctx context.Context, vehicleID uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleModel{}).
		Where("id = ? AND in_parking = ?", vehicleID, false).
		Updates(map[string]any{
			"in_parking":       true,
			"last_activity_at": at,
			"updated_at":       at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to set vehicle parked", "id", vehicleID, "error", result.Error)
		return fmt.Errorf("failed to set vehicle parked: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleModel{}).
			Where("id = ?", vehicleID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check vehicle existence: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("vehicle not found")
		}
		return errors.NewConflictError("vehicle is already in the parking lot")
	}

	return nil
}

// ClearParked flips in_parking to false unconditionally. It must succeed for
// already-cleared vehicles because it is the self-healing path when the flag
// and the ledger disagree.
func (r *VehicleRepositoryImpl) ClearParked(ctx context.Context, vehicleID uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleModel{}).
		Where("id = ?", vehicleID).
		Updates(map[string]any{
			"in_parking":       false,
			"last_activity_at": at,
			"updated_at":       at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to clear vehicle parked flag", "id", vehicleID, "error", result.Error)
		return fmt.Errorf("failed to clear vehicle parked flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("vehicle not found")
	}

	return nil
}

// ReassignBusiness moves every vehicle of a business to another one.
func (r *VehicleRepositoryImpl) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleModel{}).
		Where("business_id = ?", fromBusinessID).
		Update("business_id", toBusinessID)
	if result.Error != nil {
		r.logger.Errorw("failed to reassign vehicles",
			"from", fromBusinessID, "to", toBusinessID, "error", result.Error)
		return 0, fmt.Errorf("failed to reassign vehicles: %w", result.Error)
	}

	r.logger.Infow("vehicles reassigned",
		"from", fromBusinessID, "to", toBusinessID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}
