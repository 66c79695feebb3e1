package energy

import "math"

// Battery is a symmetric discharge/recharge electric energy source with
// SOC hysteresis controlling when recharge is enabled.
type Battery struct {
	capacityKWh      float64
	currentKWh       float64
	depthOfDischarge float64
	cRate            float64 // capacity divisor: discharge is capped at capacity/cRate kWh per hour
	rechargeLowerSOC float64
	rechargeUpperSOC float64

	enableRecharge bool

	totalEnergyConsumedKWh    float64
	cumulativeRegenRechargeKWh float64
	cumulativeHybridRechargeKWh float64
}

// NewBattery builds a battery at the given initial SOC percentage.
func NewBattery(capacityKWh, initialSOCPercent, depthOfDischarge, cRate, rechargeLowerSOC, rechargeUpperSOC float64) *Battery {
	return &Battery{
		capacityKWh:      capacityKWh,
		currentKWh:       capacityKWh * clamp01(initialSOCPercent/100),
		depthOfDischarge: depthOfDischarge,
		cRate:            cRate,
		rechargeLowerSOC: rechargeLowerSOC,
		rechargeUpperSOC: rechargeUpperSOC,
	}
}

// FuelType is always Electric.
func (b *Battery) FuelType() FuelType { return FuelElectric }

// CurrentStateFraction is the state of charge in [0,1].
func (b *Battery) CurrentStateFraction() float64 {
	if b.capacityKWh <= 0 {
		return 0
	}
	return clamp01(b.currentKWh / b.capacityKWh)
}

// CurrentWeightKg is always 0: battery weight does not vary with charge.
func (b *Battery) CurrentWeightKg() float64 { return 0 }

// maxDischargeKWh is the per-step discharge ceiling, C/C_rate * dt.
func (b *Battery) maxDischargeKWh(dtSeconds float64) float64 {
	return (b.capacityKWh / b.cRate) * (dtSeconds / 3600.0)
}

// maxRechargeKWh is the per-step recharge ceiling, at half of C_rate.
func (b *Battery) maxRechargeKWh(dtSeconds float64) float64 {
	return (b.capacityKWh / (2 * b.cRate)) * (dtSeconds / 3600.0)
}

// Consume draws up to desiredKWh, respecting the depth-of-discharge floor
// and the per-step discharge ceiling, updating the recharge-enable
// hysteresis flag.
func (b *Battery) Consume(dtSeconds, desiredKWh float64) ConsumptionData {
	floorKWh := b.capacityKWh * (1 - b.depthOfDischarge)
	available := math.Max(0, b.currentKWh-floorKWh)
	ceiling := b.maxDischargeKWh(dtSeconds)

	drawn := math.Min(desiredKWh, math.Min(available, ceiling))
	if drawn < 0 {
		drawn = 0
	}
	b.currentKWh -= drawn
	b.totalEnergyConsumedKWh += drawn

	b.updateRechargeHysteresis()

	return ConsumptionData{
		Supplied:             drawn >= desiredKWh-1e-9,
		EnergyConsumedKWh:    drawn,
		EnergyNotConsumedKWh: math.Max(0, desiredKWh-drawn),
		Fuel:                 FuelConsumedEntry{FuelType: FuelElectric, VolumeLiters: 0},
	}
}

func (b *Battery) updateRechargeHysteresis() {
	soc := b.CurrentStateFraction()
	if soc < b.rechargeLowerSOC {
		b.enableRecharge = true
	} else if soc >= b.rechargeUpperSOC {
		b.enableRecharge = false
	}
}

// RechargeEnabled reports the current hysteresis flag state.
func (b *Battery) RechargeEnabled() bool { return b.enableRecharge }

// RechargeFromRegen adds regenerated energy (e.g. from braking) up to the
// per-step recharge ceiling, tracked separately from hybrid recharge but
// raising SOC identically.
func (b *Battery) RechargeFromRegen(dtSeconds, availableKWh float64) float64 {
	added := b.recharge(dtSeconds, availableKWh)
	b.cumulativeRegenRechargeKWh += added
	return added
}

// RechargeFromHybrid adds recharge supplied by a hybrid generator.
func (b *Battery) RechargeFromHybrid(dtSeconds, availableKWh float64) float64 {
	added := b.recharge(dtSeconds, availableKWh)
	b.cumulativeHybridRechargeKWh += added
	return added
}

func (b *Battery) recharge(dtSeconds, availableKWh float64) float64 {
	if !b.enableRecharge {
		return 0
	}
	ceiling := b.maxRechargeKWh(dtSeconds)
	room := b.capacityKWh - b.currentKWh
	added := math.Min(availableKWh, math.Min(ceiling, room))
	if added < 0 {
		added = 0
	}
	b.currentKWh += added
	b.updateRechargeHysteresis()
	return added
}

// Reset restores the battery to empty.
func (b *Battery) Reset() {
	b.currentKWh = 0
	b.totalEnergyConsumedKWh = 0
	b.cumulativeRegenRechargeKWh = 0
	b.cumulativeHybridRechargeKWh = 0
	b.enableRecharge = false
}

// TotalEnergyConsumedKWh is the cumulative energy drawn since construction
// or the last Reset.
func (b *Battery) TotalEnergyConsumedKWh() float64 { return b.totalEnergyConsumedKWh }
