package models

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/constants"
)

// VehicleModel represents the database persistence model for the vehicle
// registry. This is the anti-corruption layer between domain and database.
//
// InParking is flipped with a conditional UPDATE (see VehicleRepository):
// the entry flow only sets it when it is currently false, which makes the
// flag a mutex against double entries for the same plate.
type VehicleModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: veh_xxx"`
	BusinessID     uint   `gorm:"not null;uniqueIndex:idx_business_plate,priority:1"`
	PlateNumber    string `gorm:"not null;size:20;uniqueIndex:idx_business_plate,priority:2"`
	Class          string `gorm:"not null;size:20;default:car"`
	InParking      bool   `gorm:"not null;default:false;index:idx_in_parking"`
	LastActivityAt time.Time
	OwnerName      string `gorm:"size:100"`
	Phone          string `gorm:"size:30"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return constants.TableVehicles
}
