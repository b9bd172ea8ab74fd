package models

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/constants"
)

// ParkingSessionModel represents the database persistence model for the
// session ledger. This is the anti-corruption layer between domain and
// database.
//
// OpenSlot backs the at-most-one-open-session invariant: it holds the
// vehicle ID while the session is open and goes NULL at close or soft
// delete. The unique index then rejects a second open row per vehicle while
// tolerating any number of closed ones.
//
// DeletedAt is a plain nullable column, not gorm.DeletedAt: soft-deleted
// rows must still be reachable through the direct SID lookup, so filtering
// is explicit via the NotDeleted scope instead of GORM's automatic one.
type ParkingSessionModel struct {
	ID              uint       `gorm:"primarykey"`
	SID             string     `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: ps_xxx"`
	BusinessID      uint       `gorm:"not null;index:idx_business_exit,priority:1"`
	VehicleID       uint       `gorm:"not null;index:idx_vehicle_session"`
	EntryTime       time.Time  `gorm:"not null"`
	ExitTime        *time.Time `gorm:"index:idx_business_exit,priority:2"`
	DurationMinutes int        `gorm:"not null;default:0"`
	CostCents       int64      `gorm:"not null;default:0"`
	Currency        string     `gorm:"not null;size:3;default:COP"`
	HasMembership   bool       `gorm:"not null;default:false"`
	MembershipID    *uint
	PaymentMethod   *string `gorm:"size:20"`
	OpenSlot        *uint   `gorm:"uniqueIndex:idx_open_slot"`
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ParkingSessionModel) TableName() string {
	return constants.TableParkingSessions
}
