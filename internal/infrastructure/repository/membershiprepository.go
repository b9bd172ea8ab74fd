package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/mappers"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/constants"
	"github.com/parkgate-inc/parkgate/internal/shared/db"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

// MembershipRepositoryImpl implements the membership.MembershipRepository interface.
type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipMapper
	logger logger.Interface
}

// NewMembershipRepository creates a new membership repository instance.
func NewMembershipRepository(database *gorm.DB, logger logger.Interface) membership.MembershipRepository {
	return &MembershipRepositoryImpl{
		db:     database,
		mapper: mappers.NewMembershipMapper(),
		logger: logger,
	}
}

// Create creates a new membership in the database.
func (r *MembershipRepositoryImpl) Create(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		r.logger.Errorw("failed to map membership entity to model", "error", err)
		return fmt.Errorf("failed to map membership entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("membership already exists")
		}
		r.logger.Errorw("failed to create membership in database", "error", err)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	m.SetID(model.ID)

	r.logger.Infow("membership created", "id", model.ID, "vehicle_id", model.VehicleID)
	return nil
}

// Update updates an existing membership.
func (r *MembershipRepositoryImpl) Update(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		r.logger.Errorw("failed to map membership entity to model", "error", err)
		return fmt.Errorf("failed to map membership entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.MembershipModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"enabled":    model.Enabled,
			"ends_at":    model.EndsAt,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update membership", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}

	return nil
}

// FindBySID retrieves a membership by its public ID.
func (r *MembershipRepositoryImpl) FindBySID(ctx context.Context, sid string) (*membership.Membership, error) {
	var model models.MembershipModel

	err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("membership not found")
		}
		r.logger.Errorw("failed to get membership by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List pages through the memberships of a business, newest first. A non-zero
// vehicleID narrows the page to that vehicle.
func (r *MembershipRepositoryImpl) List(ctx context.Context, businessID, vehicleID uint, offset, limit int) ([]*membership.Membership, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	scope := func(q *gorm.DB) *gorm.DB {
		q = q.Where("business_id = ?", businessID)
		if vehicleID != 0 {
			q = q.Where("vehicle_id = ?", vehicleID)
		}
		return q
	}

	var total int64
	if err := scope(conn.Model(&models.MembershipModel{})).
		Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count memberships", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	var membershipModels []*models.MembershipModel
	if err := scope(conn).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&membershipModels).Error; err != nil {
		r.logger.Errorw("failed to list memberships", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}

	entities, err := r.mapper.ToEntities(membershipModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// FindActiveForVehicle returns the enabled membership covering the vehicle
// at the given instant. Validity bounds are checked in SQL so an expired
// membership never reaches the entry flow.
func (r *MembershipRepositoryImpl) FindActiveForVehicle(ctx context.Context, businessID, vehicleID uint, at time.Time) (*membership.Membership, error) {
	var model models.MembershipModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("business_id = ? AND vehicle_id = ? AND enabled = ?", businessID, vehicleID, true).
		Where("starts_at <= ?", at).
		Where("ends_at IS NULL OR ends_at >= ?", at).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no active membership for vehicle")
		}
		r.logger.Errorw("failed to get active membership", "vehicle_id", vehicleID, "error", err)
		return nil, fmt.Errorf("failed to get active membership: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// SummarizeCreatedInWindow aggregates enabled memberships created in the
// window: counts split by vehicle class through the registry join, plus the
// summed sale value.
func (r *MembershipRepositoryImpl) SummarizeCreatedInWindow(ctx context.Context, businessID uint, window biztime.Window) (*membership.Summary, error) {
	var rows []struct {
		Class      string
		Count      int64
		TotalCents int64
	}

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableMemberships+" m").
		Select("v.class AS class, COUNT(*) AS count, COALESCE(SUM(m.value_cents), 0) AS total_cents").
		Joins("JOIN "+constants.TableVehicles+" v ON v.id = m.vehicle_id").
		Where("m.business_id = ? AND m.enabled = ?", businessID, true).
		Where("m.created_at >= ? AND m.created_at <= ?", window.Start, window.End).
		Group("v.class").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to summarize memberships", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to summarize memberships: %w", err)
	}

	summary := &membership.Summary{}
	for _, row := range rows {
		summary.Total += row.Count
		summary.TotalCents += row.TotalCents
		switch vehiclevo.VehicleClass(row.Class) {
		case vehiclevo.VehicleClassMotorcycle:
			summary.Motorcycles += row.Count
		default:
			summary.Cars += row.Count
		}
	}
	if summary.Total > 0 {
		summary.AverageCents = summary.TotalCents / summary.Total
	}

	return summary, nil
}

// ReassignBusiness moves every membership of a business to another one.
func (r *MembershipRepositoryImpl) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.MembershipModel{}).
		Where("business_id = ?", fromBusinessID).
		Update("business_id", toBusinessID)
	if result.Error != nil {
		r.logger.Errorw("failed to reassign memberships",
			"from", fromBusinessID, "to", toBusinessID, "error", result.Error)
		return 0, fmt.Errorf("failed to reassign memberships: %w", result.Error)
	}

	r.logger.Infow("memberships reassigned",
		"from", fromBusinessID, "to", toBusinessID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}
