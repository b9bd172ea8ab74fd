package business

import (
	"fmt"
	"time"

	"github.com/parkgate-inc/parkgate/internal/domain/billing"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
)

// RateTable holds the posted prices per vehicle class in cents. The checkout
// flow takes the final cost from the operator, so the table is advisory: it
// feeds receipts and the front desk, not the billing calculator.
type RateTable struct {
	CarHourCents         int64
	CarMonthlyCents      int64
	MotorcycleHourCents  int64
	MotorcycleMonthCents int64
	NightSurchargeCents  int64
}

// Business is the tenant record. Sessions, vehicles and memberships all hang
// off a business ID; the reassignment utility moves them between businesses.
type Business struct {
	id  uint
	sid string

	name     string
	address  string
	phone    string
	taxID    string
	currency string

	rates RateTable

	createdAt time.Time
	updatedAt time.Time
}

// NewBusiness registers a tenant.
func NewBusiness(name, address, phone, taxID, currency string, rates RateTable, now time.Time) (*Business, error) {
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if currency == "" {
		currency = billing.DefaultCurrency
	}

	return &Business{
		sid:       id.NewBusinessSID(),
		name:      name,
		address:   address,
		phone:     phone,
		taxID:     taxID,
		currency:  currency,
		rates:     rates,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// HourlyRateFor returns the posted hourly rate for a vehicle class as Money
// in the business currency.
func (b *Business) HourlyRateFor(class vehiclevo.VehicleClass) billing.Money {
	switch class {
	case vehiclevo.VehicleClassMotorcycle:
		return billing.NewMoney(b.rates.MotorcycleHourCents, b.currency)
	default:
		return billing.NewMoney(b.rates.CarHourCents, b.currency)
	}
}

func (b *Business) ID() uint             { return b.id }
func (b *Business) SID() string          { return b.sid }
func (b *Business) Name() string         { return b.name }
func (b *Business) Address() string      { return b.address }
func (b *Business) Phone() string        { return b.phone }
func (b *Business) TaxID() string        { return b.taxID }
func (b *Business) Currency() string     { return b.currency }
func (b *Business) Rates() RateTable     { return b.rates }
func (b *Business) CreatedAt() time.Time { return b.createdAt }
func (b *Business) UpdatedAt() time.Time { return b.updatedAt }

// SetID writes back the storage-generated ID after a create.
func (b *Business) SetID(id uint) {
	b.id = id
}

// ReconstructBusiness rebuilds a Business from persistence. Only mappers
// call it.
func ReconstructBusiness(
	id uint,
	sid string,
	name string,
	address string,
	phone string,
	taxID string,
	currency string,
	rates RateTable,
	createdAt time.Time,
	updatedAt time.Time,
) *Business {
	return &Business{
		id:        id,
		sid:       sid,
		name:      name,
		address:   address,
		phone:     phone,
		taxID:     taxID,
		currency:  currency,
		rates:     rates,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}
