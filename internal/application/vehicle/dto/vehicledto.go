package dto

import (
	"time"

	"github.com/parkgate-inc/parkgate/internal/domain/vehicle"
)

// VehicleResult is the API-facing view of a registry record.
type VehicleResult struct {
	SID            string    `json:"sid"`
	PlateNumber    string    `json:"plate_number"`
	Class          string    `json:"class"`
	InParking      bool      `json:"in_parking"`
	LastActivityAt time.Time `json:"last_activity_at"`
	OwnerName      string    `json:"owner_name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewVehicleResult(v *vehicle.Vehicle) *VehicleResult {
	return &VehicleResult{
		SID:            v.SID(),
		PlateNumber:    v.PlateNumber(),
		Class:          v.Class().String(),
		InParking:      v.InParking(),
		LastActivityAt: v.LastActivityAt(),
		OwnerName:      v.OwnerName(),
		Phone:          v.Phone(),
		CreatedAt:      v.CreatedAt(),
	}
}
