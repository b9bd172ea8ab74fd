package valueobjects

import "fmt"

// VehicleClass is the billing class of a vehicle.
type VehicleClass string

const (
	VehicleClassCar        VehicleClass = "car"
	VehicleClassMotorcycle VehicleClass = "motorcycle"
)

// NewVehicleClass parses and validates a vehicle class string.
func NewVehicleClass(value string) (VehicleClass, error) {
	class := VehicleClass(value)
	if !class.IsValid() {
		return "", fmt.Errorf("invalid vehicle class: %s", value)
	}
	return class, nil
}

func (c VehicleClass) IsValid() bool {
	switch c {
	case VehicleClassCar, VehicleClassMotorcycle:
		return true
	}
	return false
}

func (c VehicleClass) String() string {
	return string(c)
}

// All returns every valid vehicle class, in report order.
func All() []VehicleClass {
	return []VehicleClass{VehicleClassCar, VehicleClassMotorcycle}
}
