package energy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTankConsumeReducesFillAndTracksEnergy(t *testing.T) {
	tank := NewTank(FuelDiesel, 1000, 100, 0.1)
	data := tank.Consume(1, 50)

	assert.True(t, data.Supplied)
	assert.Greater(t, data.Fuel.VolumeLiters, 0.0)
	assert.Less(t, tank.CurrentStateFraction(), 1.0)
}

func TestTankConsumeStopsAtDepthOfDischargeFloor(t *testing.T) {
	tank := NewTank(FuelDiesel, 1000, 10, 0.95) // DOD 95% -> floor at 5%, so only ~5% drainable from 10%
	data := tank.Consume(1, 1e9)

	assert.False(t, data.Supplied)
	assert.GreaterOrEqual(t, tank.CurrentStateFraction(), 0.0499)
}

func TestElectricFuelHasZeroWeightContribution(t *testing.T) {
	tank := NewTank(FuelElectric, 1000, 100, 0)
	assert.Equal(t, 0.0, tank.CurrentWeightKg())
}

func TestConsumptionDataAddRequiresSameFuelType(t *testing.T) {
	a := ConsumptionData{Fuel: FuelConsumedEntry{FuelType: FuelDiesel, VolumeLiters: 1}}
	b := ConsumptionData{Fuel: FuelConsumedEntry{FuelType: FuelHFO, VolumeLiters: 1}}
	assert.False(t, a.SameFuelType(b))
	assert.Panics(t, func() { a.Add(b) })
}

func TestBatteryDischargeRespectsCeilingAndFloor(t *testing.T) {
	b := NewBattery(100, 100, 0.2, 2, 0.3, 0.8)
	data := b.Consume(3600, 1000) // one full hour: C_rate=2 caps the draw at 50 kWh, but the DOD floor (80 kWh) leaves only 20 kWh

	assert.InDelta(t, 20.0, data.EnergyConsumedKWh, 1e-6)
}

func TestBatteryRechargeHysteresis(t *testing.T) {
	b := NewBattery(100, 25, 0.1, 2, 0.3, 0.8)
	b.Consume(1, 0) // trigger hysteresis evaluation at SOC=0.25 < lower(0.3)
	assert.True(t, b.RechargeEnabled())

	added := b.RechargeFromRegen(3600, 1000)
	assert.Greater(t, added, 0.0)
}

func TestBatteryNegativeSOCNeverOccurs(t *testing.T) {
	b := NewBattery(10, 0, 0, 1, 0.2, 0.8)
	b.Consume(3600, 1000)
	assert.GreaterOrEqual(t, b.CurrentStateFraction(), 0.0)
}

func TestEmissionsFromLitersZeroForElectric(t *testing.T) {
	co2, so2 := EmissionsFromLiters(100, FuelElectric)
	assert.False(t, math.IsNaN(co2))
	assert.Equal(t, 0.0, co2)
	assert.Equal(t, 0.0, so2)
}
