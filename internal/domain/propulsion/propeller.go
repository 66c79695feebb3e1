package propulsion

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// propellerEfficiencyAtZeroSpeed is the fixed efficiency the model reports
// below the advance-ratio threshold where the open-water polynomials become
// numerically unreliable (bollard-pull regime).
const propellerEfficiencyAtZeroSpeed = 0.8

// advanceRatioFloor is the threshold below which open-water efficiency is
// not evaluated from the polynomials and the fixed bollard-pull value is
// substituted instead.
const advanceRatioFloor = 0.3

const optimumJSearchStep = 0.05

// Propeller is one Wageningen B-series screw: diameter, pitch ratio,
// expanded-blade-area ratio and blade count are fixed at construction and
// never change afterwards, eliminating the risk of a stale expanded-blade-
// area value silently invalidating a cached operating point.
type Propeller struct {
	diameterM     float64
	pitchRatio    float64 // P/D
	areaRatio     float64 // A_E/A_0
	bladeCount    int
	wakeFraction  float64
	thrustDeductionFraction float64

	gearbox *Gearbox

	lastOptimumJ float64
}

// NewPropeller validates the B-series applicability range at construction
// time; diameter, pitch ratio, blade area ratio and blade count cannot be
// changed afterwards.
func NewPropeller(diameterM, pitchRatio, areaRatio float64, bladeCount int, wakeFraction, thrustDeductionFraction float64, gearbox *Gearbox) (*Propeller, error) {
	if diameterM <= 0 {
		return nil, shared.NewConfigurationError("PropellerDiameter")
	}
	if gearbox == nil {
		return nil, shared.NewConfigurationError("Gearbox")
	}
	if !checkBSeriesApplicability(pitchRatio, areaRatio, bladeCount) {
		return nil, shared.NewConfigurationError("PropellerPitchRatio", "PropellerExpandedAreaRatio", "PropellerBladeCount")
	}
	return &Propeller{
		diameterM:               diameterM,
		pitchRatio:               pitchRatio,
		areaRatio:                areaRatio,
		bladeCount:               bladeCount,
		wakeFraction:             wakeFraction,
		thrustDeductionFraction:  thrustDeductionFraction,
		gearbox:                  gearbox,
		lastOptimumJ:             0.8,
	}, nil
}

// DiameterM is immutable after construction.
func (p *Propeller) DiameterM() float64 { return p.diameterM }

// GearboxOutputRPM is the shaft RPM delivered by the owning gearbox.
func (p *Propeller) GearboxOutputRPM() float64 { return p.gearbox.OutputRPM() }

// Gearbox exposes the owning gearbox, used by the ship layer to debit
// engine energy exactly once per unique engine across all propellers.
func (p *Propeller) Gearbox() *Gearbox { return p.gearbox }

// speedOfAdvance applies Taylor's wake fraction to ship speed.
func (p *Propeller) speedOfAdvance(shipSpeedMPS float64) float64 {
	return shipSpeedMPS * (1 - p.wakeFraction)
}

// AdvanceRatio computes J = Va / (n*D), clamped to [0,1]; n is shaft
// rotations per second.
func (p *Propeller) AdvanceRatio(shipSpeedMPS, rpm float64) float64 {
	n := rpm / 60.0
	if n <= 0 || p.diameterM <= 0 {
		return 0
	}
	j := p.speedOfAdvance(shipSpeedMPS) / (n * p.diameterM)
	return math.Max(0, math.Min(1, j))
}

// OpenWaterEfficiency is eta_O = (J/2*pi) * (KT/KQ), substituting the fixed
// bollard-pull value below the advance-ratio floor where KT/KQ are no
// longer numerically trustworthy.
func (p *Propeller) OpenWaterEfficiency(j, rn float64) float64 {
	if j < advanceRatioFloor {
		return propellerEfficiencyAtZeroSpeed
	}
	kt := KT(j, p.pitchRatio, p.areaRatio, p.bladeCount, rn)
	kq := KQ(j, p.pitchRatio, p.areaRatio, p.bladeCount, rn)
	if kq <= 0 {
		panic(shared.NewNumericInvariantError("propeller: non-positive torque coefficient KQ"))
	}
	return (j / (2 * math.Pi)) * (kt / kq)
}

// ThrustN computes propeller thrust from KT at the given operating point,
// and rho the fluid density (kg/m^3).
func (p *Propeller) ThrustN(rho, rpm, j, rn float64) float64 {
	n := rpm / 60.0
	kt := KT(j, p.pitchRatio, p.areaRatio, p.bladeCount, rn)
	return kt * rho * n * n * math.Pow(p.diameterM, 4)
}

// TorqueNm computes propeller torque from KQ at the given operating point.
func (p *Propeller) TorqueNm(rho, rpm, j, rn float64) float64 {
	n := rpm / 60.0
	kq := KQ(j, p.pitchRatio, p.areaRatio, p.bladeCount, rn)
	return kq * rho * n * n * math.Pow(p.diameterM, 5)
}

// ThrustBoundN is the cavitation-free thrust ceiling T <= cbrt(2*rho*A_disk*P_E^2),
// where P_E is effective delivered power in watts and A_disk the propeller
// disk area.
func (p *Propeller) ThrustBoundN(rho, effectivePowerW float64) float64 {
	aDisk := math.Pi / 4 * p.diameterM * p.diameterM
	return math.Cbrt(2 * rho * aDisk * effectivePowerW * effectivePowerW)
}

// IdealAdvanceSpeedMPS is Va at the optimum advance ratio for the given RPM.
func (p *Propeller) IdealAdvanceSpeedMPS(rpm, j float64) float64 {
	n := rpm / 60.0
	return j * n * p.diameterM
}

// SlipRatio is 1 - Va/(n*P), the fraction of pitch distance lost to
// hydrodynamic slip.
func (p *Propeller) SlipRatio(shipSpeedMPS, rpm float64) float64 {
	n := rpm / 60.0
	if n <= 0 {
		return 0
	}
	pitchM := p.pitchRatio * p.diameterM
	theoreticalSpeed := n * pitchM
	if theoreticalSpeed <= 0 {
		return 0
	}
	return 1 - p.speedOfAdvance(shipSpeedMPS)/theoreticalSpeed
}

// SolveOperatingPoint finds the RPM at which engine power equals propeller
// absorbed power: it scans every 1.0-RPM step from minRPM to maxRPM and
// picks the step with the smallest non-negative (engine_power -
// propeller_power). The scan always covers the whole range; it does not
// start from the gearbox's current RPM or keep state between calls.
// Returns a DomainWarning if no non-negative difference exists in range.
func (p *Propeller) SolveOperatingPoint(shipSpeedMPS, rho, rn float64, enginePowerAtRPM func(rpm float64) float64, minRPM, maxRPM float64) (float64, error) {
	bestRPM := minRPM
	bestDiff := math.Inf(1)
	found := false

	for rpm := minRPM; rpm <= maxRPM; rpm += 1.0 {
		j := p.AdvanceRatio(shipSpeedMPS, rpm)
		propPowerW := p.propellerAbsorbedPowerW(rho, rpm, j, rn)
		enginePowerW := enginePowerAtRPM(rpm) * 1000.0
		diff := enginePowerW - propPowerW
		if diff >= 0 && diff < bestDiff {
			bestDiff = diff
			bestRPM = rpm
			found = true
		}
	}
	if !found {
		return 0, shared.NewDomainWarning("propeller", "no feasible engine-propeller operating point in RPM range")
	}
	return bestRPM, nil
}

// propellerAbsorbedPowerW is the shaft power the propeller absorbs at the
// given operating point: 2*pi*n*Q.
func (p *Propeller) propellerAbsorbedPowerW(rho, rpm, j, rn float64) float64 {
	n := rpm / 60.0
	q := p.TorqueNm(rho, rpm, j, rn)
	return 2 * math.Pi * n * q
}

// SearchOptimumJ hill-climbs from the last known optimum (seeded at 0.8) in
// +-0.05 steps within [0,1], maximizing open-water efficiency. Kept as
// running state across ticks so the search starts near the previous
// solution instead of restarting from scratch each time.
func (p *Propeller) SearchOptimumJ(rn float64) float64 {
	current := p.lastOptimumJ
	currentEff := p.OpenWaterEfficiency(current, rn)

	for _, step := range []float64{optimumJSearchStep, -optimumJSearchStep} {
		candidate := current
		for {
			next := candidate + step
			if next < 0 || next > 1 {
				break
			}
			eff := p.OpenWaterEfficiency(next, rn)
			if eff <= currentEff {
				break
			}
			candidate = next
			currentEff = eff
		}
		if candidate != current {
			current = candidate
			break
		}
	}

	p.lastOptimumJ = current
	return current
}
