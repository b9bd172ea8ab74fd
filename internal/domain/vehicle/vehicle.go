package vehicle

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
)

// Vehicle is the registry record for one (business, plate) pair. The parking
// core consults and flips its state but never deletes it; removal is an
// administrative action outside the session lifecycle.
//
// Invariant: inParking is true iff exactly one non-deleted session for this
// vehicle has no exit time. The repository enforces it with a conditional
// flag update plus a unique open-slot index on the ledger.
type Vehicle struct {
	id         uint
	sid        string
	businessID uint

	plateNumber string
	class       vo.VehicleClass

	inParking      bool
	lastActivityAt time.Time

	ownerName string
	phone     string

	createdAt time.Time
	updatedAt time.Time
}

// CanonicalPlate normalizes a plate number to the canonical stored form.
// Every lookup and write goes through this before touching storage.
func CanonicalPlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// NewVehicle creates a registry record on first entry.
func NewVehicle(businessID uint, plateNumber string, class vo.VehicleClass, now time.Time) (*Vehicle, error) {
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}

	plate := CanonicalPlate(plateNumber)
	if plate == "" {
		return nil, fmt.Errorf("plate number is required")
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("invalid vehicle class: %s", class)
	}

	return &Vehicle{
		sid:            id.NewVehicleSID(),
		businessID:     businessID,
		plateNumber:    plate,
		class:          class,
		inParking:      false,
		lastActivityAt: now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// MarkParked flips the vehicle into the lot. The persisted flip is
// conditional (see VehicleRepository.SetParked); this keeps the in-memory
// entity in step after the repository confirms it.
func (v *Vehicle) MarkParked(now time.Time) {
	v.inParking = true
	v.lastActivityAt = now
	v.updatedAt = now
}

// ClearParked flips the vehicle out of the lot.
func (v *Vehicle) ClearParked(now time.Time) {
	v.inParking = false
	v.lastActivityAt = now
	v.updatedAt = now
}

// UpdateClass reclassifies the vehicle for future sessions. Sessions already
// opened keep the class they were priced under via the ledger join.
func (v *Vehicle) UpdateClass(class vo.VehicleClass, now time.Time) error {
	if !class.IsValid() {
		return fmt.Errorf("invalid vehicle class: %s", class)
	}
	v.class = class
	v.updatedAt = now
	return nil
}

// UpdateContact replaces the owner contact fields used on receipts.
func (v *Vehicle) UpdateContact(ownerName, phone string, now time.Time) {
	v.ownerName = strings.TrimSpace(ownerName)
	v.phone = strings.TrimSpace(phone)
	v.updatedAt = now
}

func (v *Vehicle) ID() uint                  { return v.id }
func (v *Vehicle) SID() string               { return v.sid }
func (v *Vehicle) BusinessID() uint          { return v.businessID }
func (v *Vehicle) PlateNumber() string       { return v.plateNumber }
func (v *Vehicle) Class() vo.VehicleClass    { return v.class }
func (v *Vehicle) InParking() bool           { return v.inParking }
func (v *Vehicle) LastActivityAt() time.Time { return v.lastActivityAt }
func (v *Vehicle) OwnerName() string         { return v.ownerName }
func (v *Vehicle) Phone() string             { return v.phone }
func (v *Vehicle) CreatedAt() time.Time      { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time      { return v.updatedAt }

// SetID writes back the storage-generated ID after a create.
func (v *Vehicle) SetID(id uint) {
	v.id = id
}

// ReconstructVehicle rebuilds a Vehicle from persistence. Only mappers call it.
func ReconstructVehicle(
	id uint,
	sid string,
	businessID uint,
	plateNumber string,
	class vo.VehicleClass,
	inParking bool,
	lastActivityAt time.Time,
	ownerName string,
	phone string,
	createdAt time.Time,
	updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:             id,
		sid:            sid,
		businessID:     businessID,
		plateNumber:    plateNumber,
		class:          class,
		inParking:      inParking,
		lastActivityAt: lastActivityAt,
		ownerName:      ownerName,
		phone:          phone,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}
