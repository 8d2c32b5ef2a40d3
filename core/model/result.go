package model

// EVEnergyPerKm is the fixed consumption used for electric vehicles in kWh/km.
const EVEnergyPerKm = 0.2

// PredictionResult is the adjusted estimate returned to callers. EnergyKWh is
// only set for electric vehicles.
type PredictionResult struct {
	FuelL     float64  `json:"fuel_l"`
	EnergyKWh *float64 `json:"energy_kwh,omitempty"`
	CO2Kg     float64  `json:"co2_kg"`
}

// IsElectric reports whether the result carries an energy estimate.
func (r PredictionResult) IsElectric() bool { return r.EnergyKWh != nil }

// Energy returns the energy estimate or 0 when absent.
func (r PredictionResult) Energy() float64 {
	if r.EnergyKWh == nil {
		return 0
	}
	return *r.EnergyKWh
}
