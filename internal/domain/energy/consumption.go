package energy

import "math"

// FuelConsumedEntry is the liters consumed of one fuel type within a
// ConsumptionData record.
type FuelConsumedEntry struct {
	FuelType        FuelType
	VolumeLiters float64
}

// ConsumptionData is the result of one EnergySource.Consume call: whether
// the request was fully met, the energy actually consumed and not
// consumed (in kWh), and the per-fuel-type liters drawn. It is addable and
// subtractable, but only between records of the same fuel type.
type ConsumptionData struct {
	Supplied             bool
	EnergyConsumedKWh    float64
	EnergyNotConsumedKWh float64
	Fuel                 FuelConsumedEntry
}

// Add combines two consumption records of the same fuel type. It panics
// if the fuel types differ, since mixing incompatible fuel totals would
// silently corrupt the emissions ledger — callers are expected to guard
// with SameFuelType first.
func (c ConsumptionData) Add(other ConsumptionData) ConsumptionData {
	if c.Fuel.FuelType != other.Fuel.FuelType {
		panic("energy: cannot add ConsumptionData of different fuel types")
	}
	return ConsumptionData{
		Supplied:             c.Supplied && other.Supplied,
		EnergyConsumedKWh:    c.EnergyConsumedKWh + other.EnergyConsumedKWh,
		EnergyNotConsumedKWh: c.EnergyNotConsumedKWh + other.EnergyNotConsumedKWh,
		Fuel: FuelConsumedEntry{
			FuelType:     c.Fuel.FuelType,
			VolumeLiters: c.Fuel.VolumeLiters + other.Fuel.VolumeLiters,
		},
	}
}

// SameFuelType reports whether two records can be combined.
func (c ConsumptionData) SameFuelType(other ConsumptionData) bool {
	return c.Fuel.FuelType == other.Fuel.FuelType
}

// kWhToMJ converts kilowatt-hours to megajoules.
func kWhToMJ(kwh float64) float64 {
	return kwh * 3.6
}

// litersForEnergy converts an energy quantity in kWh to liters of a given
// fuel, per L = E_MJ/calorific * density^-1... expressed directly as
// E_MJ / (calorific_MJ_per_kg * density_kg_per_L).
func litersForEnergy(kwh float64, props FuelProperties) float64 {
	if props.CalorificValueMJ == 0 || props.DensityKgPerL == 0 {
		return 0
	}
	massKg := kWhToMJ(kwh) / props.CalorificValueMJ
	return massKg / props.DensityKgPerL
}

// EmissionsFromLiters derives cumulative CO2/SO2 mass (kg) from liters
// burned of a given fuel. Fuels without a density (Electric) emit nothing.
func EmissionsFromLiters(liters float64, f FuelType) (co2Kg, so2Kg float64) {
	props := PropertiesOf(f)
	if math.IsNaN(props.DensityKgPerL) {
		return 0, 0
	}
	massKg := liters * props.DensityKgPerL
	co2Kg = massKg * props.CarbonContentFrac * co2StoichiometricFactor
	so2Kg = massKg * props.SulfurContentFrac * so2StoichiometricFactor
	return
}
