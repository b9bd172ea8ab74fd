package models

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/constants"
)

// MembershipModel represents the database persistence model for memberships.
type MembershipModel struct {
	ID         uint      `gorm:"primarykey"`
	SID        string    `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: mem_xxx"`
	BusinessID uint      `gorm:"not null;index:idx_business_membership"`
	VehicleID  uint      `gorm:"not null;index:idx_vehicle_membership"`
	ValueCents int64     `gorm:"not null;default:0"`
	Enabled    bool      `gorm:"not null;default:true"`
	StartsAt   time.Time `gorm:"not null"`
	EndsAt     *time.Time
	CreatedAt  time.Time `gorm:"index:idx_membership_created"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (MembershipModel) TableName() string {
	return constants.TableMemberships
}
