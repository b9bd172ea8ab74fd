package models

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/shared/constants"
)

// BusinessModel represents the database persistence model for tenants.
// Rates are stored flattened in cents; the checkout flow does not read them,
// they feed receipts and the front desk.
type BusinessModel struct {
	ID       uint   `gorm:"primarykey"`
	SID      string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: biz_xxx"`
	Name     string `gorm:"not null;size:100"`
	Address  string `gorm:"size:200"`
	Phone    string `gorm:"size:30"`
	TaxID    string `gorm:"size:30"`
	Currency string `gorm:"not null;size:3;default:COP"`

	CarHourCents         int64 `gorm:"not null;default:0"`
	CarMonthlyCents      int64 `gorm:"not null;default:0"`
	MotorcycleHourCents  int64 `gorm:"not null;default:0"`
	MotorcycleMonthCents int64 `gorm:"not null;default:0"`
	NightSurchargeCents  int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BusinessModel) TableName() string {
	return constants.TableBusinesses
}
