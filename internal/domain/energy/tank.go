package energy

import "math"

// Tank is a liquid/gas fuel reservoir. It is drainable iff the requested
// energy's liter-equivalent is available and doing so would not push the
// state of charge below (1 - depth-of-discharge).
type Tank struct {
	fuel                  FuelType
	capacityLiters        float64
	currentLiters         float64
	depthOfDischargeFrac  float64
	totalEnergyConsumedKWh float64
	cumulativeLitersBurned float64
}

// NewTank builds a tank at the given initial fill percentage of capacity.
func NewTank(fuel FuelType, capacityLiters, initialFillPercent, depthOfDischargeFrac float64) *Tank {
	return &Tank{
		fuel:                 fuel,
		capacityLiters:       capacityLiters,
		currentLiters:        capacityLiters * clamp01(initialFillPercent/100),
		depthOfDischargeFrac: depthOfDischargeFrac,
	}
}

// FuelType returns the tank's fuel.
func (t *Tank) FuelType() FuelType { return t.fuel }

// CurrentStateFraction is the fill fraction of capacity, in [0,1].
func (t *Tank) CurrentStateFraction() float64 {
	if t.capacityLiters <= 0 {
		return 0
	}
	return clamp01(t.currentLiters / t.capacityLiters)
}

// CurrentWeightKg is the weight of fuel currently held.
func (t *Tank) CurrentWeightKg() float64 {
	props := PropertiesOf(t.fuel)
	if math.IsNaN(props.DensityKgPerL) {
		return 0
	}
	return t.currentLiters * props.DensityKgPerL
}

// Consume draws up to desiredKWh from the tank, respecting the
// depth-of-discharge floor. Partial supply is returned (never an error)
// when the floor or remaining fuel would otherwise be exceeded.
func (t *Tank) Consume(dtSeconds, desiredKWh float64) ConsumptionData {
	props := PropertiesOf(t.fuel)
	floorLiters := t.capacityLiters * (1 - t.depthOfDischargeFrac)

	desiredLiters := litersForEnergy(desiredKWh, props)
	available := t.currentLiters - floorLiters
	if available < 0 {
		available = 0
	}

	drawnLiters := math.Min(desiredLiters, available)
	if drawnLiters < 0 {
		drawnLiters = 0
	}

	t.currentLiters -= drawnLiters
	t.cumulativeLitersBurned += drawnLiters

	massKg := drawnLiters * props.DensityKgPerL
	energyConsumedKWh := 0.0
	if props.CalorificValueMJ > 0 {
		energyConsumedKWh = massKg * props.CalorificValueMJ / 3.6
	}
	t.totalEnergyConsumedKWh += energyConsumedKWh

	return ConsumptionData{
		Supplied:             drawnLiters >= desiredLiters-1e-9,
		EnergyConsumedKWh:    energyConsumedKWh,
		EnergyNotConsumedKWh: math.Max(0, desiredKWh-energyConsumedKWh),
		Fuel:                 FuelConsumedEntry{FuelType: t.fuel, VolumeLiters: drawnLiters},
	}
}

// Reset restores the tank to empty, as used when re-running a scenario.
func (t *Tank) Reset() {
	t.currentLiters = 0
	t.totalEnergyConsumedKWh = 0
	t.cumulativeLitersBurned = 0
}

// TotalEnergyConsumedKWh is the cumulative energy drawn since construction
// or the last Reset.
func (t *Tank) TotalEnergyConsumedKWh() float64 { return t.totalEnergyConsumedKWh }

// CumulativeEmissionsKg returns the total CO2 and SO2 mass emitted from
// fuel burned so far.
func (t *Tank) CumulativeEmissionsKg() (co2Kg, so2Kg float64) {
	return EmissionsFromLiters(t.cumulativeLitersBurned, t.fuel)
}
