package model

// VehicleKind identifies the vehicle class a trip is planned for.
type VehicleKind int

const (
	VehicleCar VehicleKind = iota
	VehicleVan
	VehicleBike
	VehicleEV
)

// VehicleProfile holds the static per-class constants applied around inference.
type VehicleProfile struct {
	// ReferenceWeightKg replaces the request weight in the feature vector.
	ReferenceWeightKg float64
	// CO2ScaleFactor multiplies the raw CO2 estimate of the model.
	CO2ScaleFactor float64
}

var profiles = map[VehicleKind]VehicleProfile{
	VehicleCar:  {ReferenceWeightKg: 1200, CO2ScaleFactor: 1.0},
	VehicleVan:  {ReferenceWeightKg: 2500, CO2ScaleFactor: 1.4},
	VehicleBike: {ReferenceWeightKg: 200, CO2ScaleFactor: 0.2},
	VehicleEV:   {ReferenceWeightKg: 1800, CO2ScaleFactor: 0.0},
}

// ParseVehicle maps a wire name to a VehicleKind. Names are matched exactly;
// anything unknown falls back to VehicleCar.
func ParseVehicle(s string) VehicleKind {
	k, _ := LookupVehicle(s)
	return k
}

// LookupVehicle is ParseVehicle that also reports whether s was a known name.
func LookupVehicle(s string) (VehicleKind, bool) {
	switch s {
	case "car":
		return VehicleCar, true
	case "van":
		return VehicleVan, true
	case "bike":
		return VehicleBike, true
	case "ev":
		return VehicleEV, true
	default:
		return VehicleCar, false
	}
}

// String returns the wire name of the vehicle kind.
func (k VehicleKind) String() string {
	switch k {
	case VehicleVan:
		return "van"
	case VehicleBike:
		return "bike"
	case VehicleEV:
		return "ev"
	default:
		return "car"
	}
}

// Profile returns the constants for the vehicle kind. Out of range values
// resolve to the car profile.
func (k VehicleKind) Profile() VehicleProfile {
	if p, ok := profiles[k]; ok {
		return p
	}
	return profiles[VehicleCar]
}

// IsElectric reports whether the vehicle burns no liquid fuel.
func (k VehicleKind) IsElectric() bool { return k == VehicleEV }

// MarshalText implements encoding.TextMarshaler.
func (k VehicleKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseVehicle.
func (k *VehicleKind) UnmarshalText(b []byte) error {
	*k = ParseVehicle(string(b))
	return nil
}
