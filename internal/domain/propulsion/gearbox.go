package propulsion

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// Gearbox aggregates one or more engines into a single output shaft: a
// power-weighted average RPM reduced by the gear ratio, and the summed
// output power scaled by gearbox efficiency.
type Gearbox struct {
	engines      []*Engine
	gearRatio    float64
	efficiency   float64
}

// NewGearbox validates that at least one engine is attached and the gear
// ratio is positive.
func NewGearbox(engines []*Engine, gearRatio, efficiency float64) (*Gearbox, error) {
	if len(engines) == 0 {
		return nil, shared.NewConfigurationError("EnginesCountPerPropeller")
	}
	if gearRatio <= 0 {
		return nil, shared.NewConfigurationError("GearRatio")
	}
	if efficiency <= 0 {
		efficiency = 0.97
	}
	return &Gearbox{engines: engines, gearRatio: gearRatio, efficiency: efficiency}, nil
}

// OutputRPM is the power-weighted average of each engine's RPM, reduced by
// the gear ratio. For a single engine this reduces to engine.RPM/gearRatio.
func (g *Gearbox) OutputRPM() float64 {
	totalPower := 0.0
	weighted := 0.0
	for _, e := range g.engines {
		totalPower += e.OutputPowerKW()
		weighted += e.OutputPowerKW() * e.RPM()
	}
	if totalPower <= 0 {
		return 0
	}
	return (weighted / totalPower) / g.gearRatio
}

// OutputPowerKW is the summed engine power scaled by gearbox efficiency.
func (g *Gearbox) OutputPowerKW() float64 {
	total := 0.0
	for _, e := range g.engines {
		total += e.OutputPowerKW()
	}
	return total * g.efficiency
}

// SetEngineRPM distributes a target output RPM across engines weighted by
// each engine's brake power, failing if the target lies outside the
// aggregate RPM range any engine's active curve can produce.
func (g *Gearbox) SetEngineRPM(targetOutputRPM float64) error {
	target := targetOutputRPM * g.gearRatio

	totalBrakePower := 0.0
	for _, e := range g.engines {
		totalBrakePower += e.BrakePowerKW()
	}
	if totalBrakePower <= 0 {
		return shared.NewDomainWarning("gearbox", "no engine brake power available to distribute RPM target")
	}

	minRPM, maxRPM := math.Inf(1), math.Inf(-1)
	for _, e := range g.engines {
		curve := e.activeCurve()
		if len(curve) == 0 {
			continue
		}
		if curve[0].RPM < minRPM {
			minRPM = curve[0].RPM
		}
		if curve[len(curve)-1].RPM > maxRPM {
			maxRPM = curve[len(curve)-1].RPM
		}
	}
	if target < minRPM || target > maxRPM {
		return shared.NewDomainWarning("gearbox", "target RPM outside aggregate engine curve range")
	}

	for _, e := range g.engines {
		weight := e.BrakePowerKW() / totalBrakePower
		props := enginePropertiesAtRPM(e.activeCurve(), target)
		if e.BrakePowerKW() > 0 {
			e.SetMaxPowerRatio(props.BrakePowerKW / e.BrakePowerKW() * weight * float64(len(g.engines)))
		}
	}
	return nil
}

// Engines exposes the underlying engine set, used by the ship layer to
// debit energy once per unique engine ID across propellers.
func (g *Gearbox) Engines() []*Engine {
	return g.engines
}
