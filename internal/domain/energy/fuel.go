// Package energy implements the ship's energy sources (fuel tanks and
// batteries): capacity accounting, state of charge, and emission totals.
package energy

import (
	"math"
	"strings"
)

// FuelType is one of the seven recognized fuels; Electric carries sentinel
// "no value" density/calorific.
type FuelType int

const (
	FuelDiesel FuelType = iota
	FuelHFO
	FuelLNG
	FuelMDO
	FuelMGO
	FuelBiofuel
	FuelElectric
)

func (f FuelType) String() string {
	switch f {
	case FuelDiesel:
		return "Diesel"
	case FuelHFO:
		return "HFO"
	case FuelLNG:
		return "LNG"
	case FuelMDO:
		return "MDO"
	case FuelMGO:
		return "MGO"
	case FuelBiofuel:
		return "Biofuel"
	case FuelElectric:
		return "Electric"
	default:
		return "Unknown"
	}
}

// FuelProperties carries the physical constants needed to convert between
// energy, volume and emissions for one fuel type.
type FuelProperties struct {
	DensityKgPerL      float64 // NaN for Electric
	CalorificValueMJ   float64 // NaN for Electric
	CarbonContentFrac  float64
	SulfurContentFrac  float64
}

// fuelTable is package-level static data, analogous to the teacher's
// flight-mode configuration map, scaled to the fuel taxonomy.
var fuelTable = map[FuelType]FuelProperties{
	FuelDiesel:   {DensityKgPerL: 0.832, CalorificValueMJ: 42.6, CarbonContentFrac: 0.87, SulfurContentFrac: 0.001},
	FuelHFO:      {DensityKgPerL: 0.991, CalorificValueMJ: 40.5, CarbonContentFrac: 0.85, SulfurContentFrac: 0.035},
	FuelLNG:      {DensityKgPerL: 0.450, CalorificValueMJ: 50.0, CarbonContentFrac: 0.75, SulfurContentFrac: 0.0},
	FuelMDO:      {DensityKgPerL: 0.890, CalorificValueMJ: 42.7, CarbonContentFrac: 0.87, SulfurContentFrac: 0.005},
	FuelMGO:      {DensityKgPerL: 0.860, CalorificValueMJ: 42.7, CarbonContentFrac: 0.87, SulfurContentFrac: 0.001},
	FuelBiofuel:  {DensityKgPerL: 0.880, CalorificValueMJ: 37.0, CarbonContentFrac: 0.77, SulfurContentFrac: 0.0},
	FuelElectric: {DensityKgPerL: math.NaN(), CalorificValueMJ: math.NaN(), CarbonContentFrac: 0, SulfurContentFrac: 0},
}

// PropertiesOf returns the fixed physical properties for a fuel type.
func PropertiesOf(f FuelType) FuelProperties {
	return fuelTable[f]
}

// ParseFuelType maps a descriptor's FuelType string to the enum,
// case-insensitively; unrecognized values default to Diesel.
func ParseFuelType(s string) FuelType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hfo":
		return FuelHFO
	case "lng":
		return FuelLNG
	case "mdo":
		return FuelMDO
	case "mgo":
		return FuelMGO
	case "biofuel":
		return FuelBiofuel
	case "electric":
		return FuelElectric
	default:
		return FuelDiesel
	}
}

const (
	co2StoichiometricFactor = 44.0 / 12.0
	so2StoichiometricFactor = 64.0 / 32.0
)
