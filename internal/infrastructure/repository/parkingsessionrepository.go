package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/mappers"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/persistence/models"
	"github.com/parkgate-inc/parkgate/internal/shared/biztime"
	"github.com/parkgate-inc/parkgate/internal/shared/constants"
	"github.com/parkgate-inc/parkgate/internal/shared/db"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

// ParkingSessionRepositoryImpl implements the parking.ParkingSessionRepository interface.
type ParkingSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ParkingSessionMapper
	logger logger.Interface
}

// NewParkingSessionRepository creates a new parking session repository instance.
func NewParkingSessionRepository(database *gorm.DB, logger logger.Interface) parking.ParkingSessionRepository {
	return &ParkingSessionRepositoryImpl{
		db:     database,
		mapper: mappers.NewParkingSessionMapper(),
		logger: logger,
	}
}

// Create inserts an open session. The unique open-slot index turns a racing
// second insert for the same vehicle into a duplicate-key error, which we
// surface as a conflict.
func (r *ParkingSessionRepositoryImpl) Create(ctx context.Context, s *parking.ParkingSession) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to map parking session entity to model", "error", err)
		return fmt.Errorf("failed to map parking session entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("vehicle already has an open session")
		}
		r.logger.Errorw("failed to create parking session in database", "error", err)
		return fmt.Errorf("failed to create parking session: %w", err)
	}

	s.SetID(model.ID)

	r.logger.Infow("parking session opened", "id", model.ID, "sid", model.SID, "vehicle_id", model.VehicleID)
	return nil
}

// Update persists the mutable half of the ledger row: exit, duration, cost,
// payment method, the recomputed open slot and the soft-delete marker.
func (r *ParkingSessionRepositoryImpl) Update(ctx context.Context, s *parking.ParkingSession) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to map parking session entity to model", "error", err)
		return fmt.Errorf("failed to map parking session entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ParkingSessionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"exit_time":        model.ExitTime,
			"duration_minutes": model.DurationMinutes,
			"cost_cents":       model.CostCents,
			"currency":         model.Currency,
			"payment_method":   model.PaymentMethod,
			"open_slot":        model.OpenSlot,
			"deleted_at":       model.DeletedAt,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update parking session", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update parking session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("parking session not found")
	}

	return nil
}

// FindOpenByVehicle returns the single live open session for a vehicle.
func (r *ParkingSessionRepositoryImpl) FindOpenByVehicle(ctx context.Context, businessID, vehicleID uint) (*parking.ParkingSession, error) {
	var model models.ParkingSessionModel

	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("business_id = ? AND vehicle_id = ? AND exit_time IS NULL", businessID, vehicleID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no open session for vehicle")
		}
		r.logger.Errorw("failed to get open session", "vehicle_id", vehicleID, "error", err)
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// FindBySID retrieves a session by its public ID. This is the one read that
// does not filter soft-deleted rows.
func (r *ParkingSessionRepositoryImpl) FindBySID(ctx context.Context, sid string) (*parking.ParkingSession, error) {
	var model models.ParkingSessionModel

	err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("parking session not found")
		}
		r.logger.Errorw("failed to get parking session by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get parking session: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListClosedInWindow pages through closed sessions whose exit falls in the
// window, newest exit first.
func (r *ParkingSessionRepositoryImpl) ListClosedInWindow(ctx context.Context, businessID uint, window biztime.Window, offset, limit int) ([]*parking.ParkingSession, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	base := func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.ParkingSessionModel{}).
			Scopes(db.NotDeleted(), db.ExitedWithin(window.Start, window.End)).
			Where("business_id = ?", businessID)
	}

	var total int64
	if err := base(conn).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count sessions in window", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	var sessionModels []*models.ParkingSessionModel
	if err := base(conn).
		Order("exit_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessionModels).Error; err != nil {
		r.logger.Errorw("failed to list sessions in window", "business_id", businessID, "error", err)
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	entities, err := r.mapper.ToEntities(sessionModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// SummarizePaidInWindow totals revenue-bearing sessions closed in the
// window. Zero-cost closes (memberships) are excluded; an empty window
// yields the zero summary with a zero average.
func (r *ParkingSessionRepositoryImpl) SummarizePaidInWindow(ctx context.Context, businessID uint, window biztime.Window) (*parking.PaidSummary, error) {
	var row struct {
		TotalCents int64
		Count      int64
	}

	err := db.GetTxFromContext(ctx, r.db).Model(&models.ParkingSessionModel{}).
		Select("COALESCE(SUM(cost_cents), 0) AS total_cents, COUNT(*) AS count").
		Scopes(db.NotDeleted(), db.ExitedWithin(window.Start, window.End)).
		Where("business_id = ? AND cost_cents > 0", businessID).
		Scan(&row).Error
	if err != nil {
		r.logger.Errorw("failed to summarize paid sessions", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to summarize paid sessions: %w", err)
	}

	summary := &parking.PaidSummary{
		TotalCents: row.TotalCents,
		Count:      row.Count,
	}
	if row.Count > 0 {
		summary.AverageCents = row.TotalCents / row.Count
	}

	return summary, nil
}

// ClassBreakdownInWindow groups the paid population by the vehicle class
// recorded in the registry.
func (r *ParkingSessionRepositoryImpl) ClassBreakdownInWindow(ctx context.Context, businessID uint, window biztime.Window) ([]parking.ClassAggregate, error) {
	var rows []struct {
		Class      string
		Count      int64
		TotalCents int64
	}

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableParkingSessions+" ps").
		Select("v.class AS class, COUNT(*) AS count, COALESCE(SUM(ps.cost_cents), 0) AS total_cents").
		Joins("JOIN "+constants.TableVehicles+" v ON v.id = ps.vehicle_id").
		Scopes(db.NotDeletedWithAlias("ps")).
		Where("ps.business_id = ? AND ps.cost_cents > 0", businessID).
		Where("ps.exit_time IS NOT NULL AND ps.exit_time >= ? AND ps.exit_time <= ?", window.Start, window.End).
		Group("v.class").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to compute class breakdown", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to compute class breakdown: %w", err)
	}

	aggregates := make([]parking.ClassAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, parking.ClassAggregate{
			Class:      row.Class,
			Count:      row.Count,
			TotalCents: row.TotalCents,
		})
	}

	return aggregates, nil
}

// ReassignBusiness moves every session of a business to another one,
// soft-deleted rows included.
func (r *ParkingSessionRepositoryImpl) ReassignBusiness(ctx context.Context, fromBusinessID, toBusinessID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ParkingSessionModel{}).
		Where("business_id = ?", fromBusinessID).
		Update("business_id", toBusinessID)
	if result.Error != nil {
		r.logger.Errorw("failed to reassign parking sessions",
			"from", fromBusinessID, "to", toBusinessID, "error", result.Error)
		return 0, fmt.Errorf("failed to reassign parking sessions: %w", result.Error)
	}

	r.logger.Infow("parking sessions reassigned",
		"from", fromBusinessID, "to", toBusinessID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}
