// Package ship implements the vessel aggregate: hull and weight
// descriptors, dynamics state, path state, propulsion and energy
// ownership, and the per-tick car-following acceleration controller and
// path integrator of §4.L.
package ship

import (
	"math"
	"time"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/environment"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/propulsion"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/resistance"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// jerkMaxMPS3 bounds the per-tick change in acceleration, per §4.L step 4.
const jerkMaxMPS3 = 2.0

// reactionHorizonSeconds is mT_s, the horizon the safe-gap integrator
// projects deceleration over.
const reactionHorizonSeconds = 10.0

const maxSafeGapIterations = 200
const safeGapStepSeconds = 0.5
const safeGapStopSpeedMPS = 0.5

const lateralDeviationWarnM = 10.0
const headingDeviationWarnDeg = 5.0

// PathState is the ordered route a ship follows: points, the lines between
// them, and cumulative length up to each point.
type PathState struct {
	Points            []geo.GPoint
	Lines             []geo.GLine
	CumulativeLengths []float64
	LastReachedVertex int
	TotalTraveledM    float64
}

// NewPathState builds cumulative lengths from the given route.
func NewPathState(points []geo.GPoint, lines []geo.GLine) PathState {
	cum := make([]float64, len(points))
	running := 0.0
	for i, l := range lines {
		running += l.Length()
		cum[i+1] = running
	}
	return PathState{Points: points, Lines: lines, CumulativeLengths: cum}
}

// Ship is one vessel: hull form, weight, dynamics state, path state,
// propulsion (1..N propellers, each owning a gearbox of 1..N engines) and
// energy sources.
type Ship struct {
	UserID string

	Hull resistance.HullForm

	LightshipWeightKg float64
	CargoWeightKg     float64
	AddedMassKg       float64

	Position         geo.GPoint
	HeadingDeg       float64
	SpeedMPS         float64
	PreviousSpeedMPS float64
	AccelMPS2        float64
	PrevAccelMPS2    float64

	CurrentThrustN     float64
	CurrentResistanceN float64

	MaxSpeedMPS       float64
	MaxJerkMPS3       float64
	RudderMaxAngleDeg float64

	Path PathState

	Propellers    []*propulsion.Propeller
	EnergySources []energy.Source

	CumulativeFuelLitersByType map[energy.FuelType]float64
	CumulativeEnergyKWh        float64

	Loaded            bool
	IsOn              bool
	ReachedDestination bool
	OutOfEnergy       bool
	StopIfNoEnergy    bool

	StoppingPointIndices []int

	StartTime time.Time

	CalmWaterModel resistance.ResistanceModel
	DynamicModel   resistance.DynamicModel

	Sink shared.EventSink
}

// New builds a ship with defaults applied (jerk cap, null event sink).
func New(userID string, hull resistance.HullForm) *Ship {
	return &Ship{
		UserID:                     userID,
		Hull:                       hull,
		MaxJerkMPS3:                jerkMaxMPS3,
		CumulativeFuelLitersByType: make(map[energy.FuelType]float64),
		CalmWaterModel:             resistance.HoltropMennen{},
		DynamicModel:               resistance.NewLangMaoDynamic(),
		Sink:                       shared.NullEventSink{},
	}
}

// Load attaches a path and resets all cumulative counters; this is the one
// allowed transition from "constructed" into "ready to tick" per the
// lifecycle in §3.
func (s *Ship) Load(points []geo.GPoint, lines []geo.GLine) {
	s.Path = NewPathState(points, lines)
	s.Path.LastReachedVertex = 0
	s.Path.TotalTraveledM = 0
	s.CumulativeFuelLitersByType = make(map[energy.FuelType]float64)
	s.CumulativeEnergyKWh = 0
	s.PreviousSpeedMPS = 0
	s.PrevAccelMPS2 = 0
	s.SpeedMPS = 0
	s.AccelMPS2 = 0
	s.Loaded = true
	s.IsOn = true
	s.ReachedDestination = false
	s.OutOfEnergy = false
	if len(points) > 0 {
		s.Position = points[0]
	}
}

// TotalDynamicMassKg is the mass the acceleration controller divides
// force by: lightship + cargo + added (hydrodynamic) mass.
func (s *Ship) TotalDynamicMassKg() float64 {
	return s.LightshipWeightKg + s.CargoWeightKg + s.AddedMassKg
}

// totalThrustAndResistanceN sums thrust across every propeller at its
// gearbox's current RPM, and resistance from the calm-water + dynamic
// models, for the given environment sample.
func (s *Ship) totalThrustAndResistanceN(env environment.Record) (thrustN, resistanceN float64) {
	st := resistance.State{SpeedMPS: s.SpeedMPS, HeadingDeg: s.HeadingDeg}
	resEnv := resistance.Environment{
		WaterDepthM:         env.DepthM,
		SalinityPPT:         env.SalinityPPT,
		WaveHeightM:         env.WaveHeightM,
		WaveAngularFreqRadS: env.WaveAngularFreqRadS,
		WindSpeedMPS:        hypot(env.WindEastMPS, env.WindNorthMPS),
	}

	calm, warnings := s.CalmWaterModel.CalmWater(s.Hull, resEnv, st)
	for _, w := range warnings {
		s.Sink.DomainWarningRaised(s.UserID, w)
	}
	resistanceN = calm.TotalN()
	if s.DynamicModel != nil {
		dyn := s.DynamicModel.Dynamic(s.Hull, resEnv, st)
		resistanceN += dyn.TotalN()
	}

	rho := 1025.0
	for _, p := range s.Propellers {
		rpm := p.GearboxOutputRPM()
		j := p.AdvanceRatio(s.SpeedMPS, rpm)
		rn := reynoldsForPropeller(s.SpeedMPS, p.DiameterM())
		thrustN += p.ThrustN(rho, rpm, j, rn)
	}
	return thrustN, resistanceN
}

func reynoldsForPropeller(speedMPS, diameterM float64) float64 {
	const kinematicViscosity = 1.1883e-6
	if diameterM <= 0 {
		return 0
	}
	return speedMPS * diameterM / kinematicViscosity
}

func hypot(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Snapshot builds the reached-destination JSON-able state snapshot of §6,
// safe to call from a control thread because it only reads already-settled
// fields (the simulator only calls Sail between snapshots, never
// concurrently with one).
func (s *Ship) Snapshot() shared.ReachedDestinationEvent {
	fuelEntries := make([]shared.FuelConsumptionEntry, 0, len(s.CumulativeFuelLitersByType))
	for ft, liters := range s.CumulativeFuelLitersByType {
		fuelEntries = append(fuelEntries, shared.FuelConsumptionEntry{
			FuelType:             ft.String(),
			ConsumedVolumeLiters: liters,
		})
	}

	sources := make([]shared.EnergySourceSnapshot, 0, len(s.EnergySources))
	for _, src := range s.EnergySources {
		sources = append(sources, shared.EnergySourceSnapshot{
			FuelType:       src.FuelType().String(),
			EnergyConsumed: src.TotalEnergyConsumedKWh(),
			Weight:         src.CurrentWeightKg(),
		})
	}

	return shared.ReachedDestinationEvent{
		ShipID:              s.UserID,
		TravelledDistance:   s.Path.TotalTraveledM,
		CurrentAcceleration: s.AccelMPS2,
		CurrentSpeed:        s.SpeedMPS,
		TotalThrust:         s.CurrentThrustN,
		TotalResistance:     s.CurrentResistanceN,
		VesselWeight:        s.TotalDynamicMassKg(),
		CargoWeight:         s.CargoWeightKg,
		IsOn:                s.IsOn,
		OutOfEnergy:         s.OutOfEnergy,
		Loaded:               s.Loaded,
		ReachedDestination:   s.ReachedDestination,
		Consumption: shared.ConsumptionSnapshot{
			EnergyKWh:       s.CumulativeEnergyKWh,
			FuelConsumption: fuelEntries,
		},
		EnergySources: sources,
		Position: shared.PositionSnapshot{
			Latitude:  s.Position.Lat,
			Longitude: s.Position.Lon,
		},
	}
}
