// Package propulsion implements the engine, gearbox and propeller layers
// that translate fuel energy into thrust.
package propulsion

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// Properties is one point on an engine's power-RPM-efficiency curve.
type Properties struct {
	BrakePowerKW float64
	RPM          float64
	Efficiency   float64 // in (0,1]
}

// Tier distinguishes the two emission-regulation curves an engine can
// operate under; switching tiers swaps the active curve.
type Tier int

const (
	TierII Tier = iota
	TierIII
)

// OperationalLoad is one of the four standard corners, plus a user-defined
// override.
type OperationalLoad int

const (
	LoadLow OperationalLoad = iota // L4
	LoadEconomic                   // L3
	LoadReducedMCR                 // L2
	LoadMCR                        // L1
	LoadDefault
	LoadUserDefined
)

const (
	throttleLogisticK      = 7.82605
	throttleLogisticMidpoint = 0.42606
	minEfficiency          = 1e-4
)

// Engine is one marine diesel/gas engine: a pair of tier curves, the four
// operational-load power settings, and the currently selected energy
// source.
type Engine struct {
	id string

	curveTierII  []Properties
	curveTierIII []Properties
	activeTier   Tier

	operationalPowerKW [4]float64 // indexed by LoadLow..LoadMCR
	currentLoad        OperationalLoad
	userPowerKW        float64
	maxPowerRatio      float64 // clamp applied to throttle coefficient

	maxSpeedMPS float64

	isOn bool

	currentOutputPowerKW  float64
	previousOutputPowerKW float64
	currentRPM            float64
	currentEfficiency     float64

	source energy.Source
}

// NewEngine builds an engine with both tier curves. Curves must be
// monotone-increasing in power; callers loading them from a descriptor are
// responsible for sorting them beforehand.
func NewEngine(id string, curveTierII, curveTierIII []Properties, operationalPowerKW [4]float64, maxSpeedMPS float64, source energy.Source) (*Engine, error) {
	if len(curveTierII) == 0 && len(curveTierIII) == 0 {
		return nil, shared.NewConfigurationError("EngineTierIIPropertiesPoints", "EngineTierIIIPropertiesPoints")
	}
	if source == nil {
		return nil, shared.NewConfigurationError("EnergySource")
	}
	return &Engine{
		id:                 id,
		curveTierII:        curveTierII,
		curveTierIII:       curveTierIII,
		activeTier:         TierII,
		operationalPowerKW: operationalPowerKW,
		currentLoad:        LoadDefault,
		maxPowerRatio:      1.0,
		maxSpeedMPS:        maxSpeedMPS,
		isOn:               true,
		source:             source,
	}, nil
}

// ID returns the engine's unique identifier, used by the ship dynamics
// layer to debit energy exactly once per unique engine per tick.
func (e *Engine) ID() string { return e.id }

// IsOn reports whether the engine is currently producing power.
func (e *Engine) IsOn() bool { return e.isOn }

// activeCurve returns the curve for the currently selected tier.
func (e *Engine) activeCurve() []Properties {
	if e.activeTier == TierIII {
		return e.curveTierIII
	}
	return e.curveTierII
}

// SetTier switches the active emission-regulation curve and reinterpolates
// the current operating point (RPM and efficiency at the current output
// power) on the new curve.
func (e *Engine) SetTier(t Tier) {
	e.activeTier = t
	if !e.isOn || e.currentOutputPowerKW <= 0 {
		return
	}
	props := enginePropertiesAtPower(e.activeCurve(), e.currentOutputPowerKW)
	e.currentRPM = props.RPM
	e.currentEfficiency = math.Max(minEfficiency, props.Efficiency)
}

// enginePropertiesAtPower linearly interpolates RPM and efficiency in
// brake power, clamping (extrapolating) to the curve's endpoints.
func enginePropertiesAtPower(curve []Properties, powerKW float64) Properties {
	if len(curve) == 0 {
		return Properties{}
	}
	if powerKW <= curve[0].BrakePowerKW {
		return curve[0]
	}
	last := curve[len(curve)-1]
	if powerKW >= last.BrakePowerKW {
		return last
	}
	for i := 0; i < len(curve)-1; i++ {
		a, b := curve[i], curve[i+1]
		if powerKW >= a.BrakePowerKW && powerKW <= b.BrakePowerKW {
			t := (powerKW - a.BrakePowerKW) / (b.BrakePowerKW - a.BrakePowerKW)
			return Properties{
				BrakePowerKW: powerKW,
				RPM:          a.RPM + t*(b.RPM-a.RPM),
				Efficiency:   a.Efficiency + t*(b.Efficiency-a.Efficiency),
			}
		}
	}
	return last
}

// enginePropertiesAtRPM is the symmetric lookup, interpolating brake power
// and efficiency in RPM.
func enginePropertiesAtRPM(curve []Properties, rpm float64) Properties {
	if len(curve) == 0 {
		return Properties{}
	}
	if rpm <= curve[0].RPM {
		return curve[0]
	}
	last := curve[len(curve)-1]
	if rpm >= last.RPM {
		return last
	}
	for i := 0; i < len(curve)-1; i++ {
		a, b := curve[i], curve[i+1]
		if rpm >= a.RPM && rpm <= b.RPM {
			t := (rpm - a.RPM) / (b.RPM - a.RPM)
			return Properties{
				BrakePowerKW: a.BrakePowerKW + t*(b.BrakePowerKW-a.BrakePowerKW),
				RPM:          rpm,
				Efficiency:   a.Efficiency + t*(b.Efficiency-a.Efficiency),
			}
		}
	}
	return last
}

// cornerPower returns the power setting for the current operational load.
func (e *Engine) cornerPower() float64 {
	switch e.currentLoad {
	case LoadLow, LoadEconomic, LoadReducedMCR, LoadMCR:
		return e.operationalPowerKW[e.currentLoad]
	case LoadUserDefined:
		return e.userPowerKW
	default: // LoadDefault
		return e.operationalPowerKW[LoadMCR]
	}
}

// UpdateCurrentStep recomputes the engine's operating point for the given
// ship speed, per 4.I's updateCurrentStep algorithm.
func (e *Engine) UpdateCurrentStep(speedMPS float64) {
	if !e.isOn {
		e.currentRPM = 0
		e.currentOutputPowerKW = 0
		e.currentEfficiency = 0
		return
	}

	speedRatio := 0.0
	if e.maxSpeedMPS > 0 {
		speedRatio = speedMPS / e.maxSpeedMPS
	}
	lambda := 1.0 / (1.0 + math.Exp(-throttleLogisticK*(speedRatio-throttleLogisticMidpoint)))
	lambda = math.Max(0.2, math.Min(1.0, lambda))
	lambda = math.Min(lambda, e.maxPowerRatio)

	raw := lambda * e.cornerPower()
	corner := e.cornerPower()
	if raw > corner {
		raw = corner
	}

	props := enginePropertiesAtPower(e.activeCurve(), raw)
	eff := math.Max(minEfficiency, props.Efficiency)

	e.previousOutputPowerKW = e.currentOutputPowerKW
	e.currentOutputPowerKW = raw
	e.currentRPM = props.RPM
	e.currentEfficiency = eff
}

// OutputPowerKW is the current output power, after UpdateCurrentStep.
func (e *Engine) OutputPowerKW() float64 { return e.currentOutputPowerKW }

// RPM is the current shaft RPM.
func (e *Engine) RPM() float64 { return e.currentRPM }

// BrakePowerKW is the MCR corner, used by the gearbox's weighted average.
func (e *Engine) BrakePowerKW() float64 { return e.operationalPowerKW[LoadMCR] }

// SetMaxPowerRatio clamps the throttle coefficient ceiling, used by the
// propeller's operating-point solver to raise the engine above its normal
// throttle law when the propeller would otherwise starve.
func (e *Engine) SetMaxPowerRatio(ratio float64) {
	e.maxPowerRatio = math.Max(0, math.Min(1, ratio))
}

// Consume debits chemical/electrical energy for dt seconds of operation at
// the current output power and efficiency, routing to the selected energy
// source. If the source under-supplies, the engine switches off and the
// partial ConsumptionData is returned.
func (e *Engine) Consume(dtSeconds float64) energy.ConsumptionData {
	if !e.isOn || e.currentEfficiency <= 0 {
		return energy.ConsumptionData{Supplied: true}
	}
	desiredKWh := (e.currentOutputPowerKW / e.currentEfficiency) * (dtSeconds / 3600.0)
	data := e.source.Consume(dtSeconds, desiredKWh)
	if !data.Supplied {
		e.isOn = false
	}
	return data
}

// RequestHigherPower advances the operational load one zone towards MCR;
// fails (returns false) at MCR.
func (e *Engine) RequestHigherPower() bool {
	switch e.currentLoad {
	case LoadLow:
		e.currentLoad = LoadEconomic
	case LoadEconomic:
		e.currentLoad = LoadReducedMCR
	case LoadReducedMCR:
		e.currentLoad = LoadMCR
	default:
		return false
	}
	return true
}

// RequestLowerPower retreats the operational load one zone towards Low;
// fails (returns false) at Low.
func (e *Engine) RequestLowerPower() bool {
	switch e.currentLoad {
	case LoadMCR:
		e.currentLoad = LoadReducedMCR
	case LoadReducedMCR:
		e.currentLoad = LoadEconomic
	case LoadEconomic:
		e.currentLoad = LoadLow
	default:
		return false
	}
	return true
}

// Disable turns the engine off, used when a NumericInvariantError recovery
// disables a ship's propulsion without aborting the whole run.
func (e *Engine) Disable() { e.isOn = false }
