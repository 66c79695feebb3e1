// Package simulator implements the cooperative tick loop of §4.M/§5: a
// single simulator instance owns a fixed set of ships and a shared,
// read-only network, and steps them one tick at a time on its own
// goroutine. A control goroutine may only pause, resume, set the end time
// or add a ship; it never touches ship state directly.
package simulator

import (
	"context"
	"sync"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/environment"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/ship"
)

// defaultTimeStepSeconds is Δt when the caller does not override it.
const defaultTimeStepSeconds = 1.0

// TrajectoryRow is one CSV output row, emitted every OutputEveryNTicks.
type TrajectoryRow struct {
	SimTimeS        float64
	ShipID          string
	LatDeg          float64
	LonDeg          float64
	HeadingDeg      float64
	SpeedMPS        float64
	AccelMPS2       float64
	TotalThrustN    float64
	TotalResistanceN float64
	CumEnergyKWh    float64
	CumFuelLiters   float64
}

// TrajectorySink receives one row per configured tick.
type TrajectorySink interface {
	WriteRow(TrajectoryRow)
	Flush() error
}

// SummarySink receives the final per-ship summary block once the run ends.
type SummarySink interface {
	WriteSummary(ShipSummary)
	Flush() error
}

// ShipSummary is one block of the output summary TXT of §6.
type ShipSummary struct {
	ShipID               string
	TotalDistanceM       float64
	TripTimeS            float64
	AverageSpeedMPS      float64
	FuelLitersByType     map[string]float64
	CO2Kg                float64
	SO2Kg                float64
	EnergyPerTonKmKWh    float64
}

// Simulator owns a fixed ship set, a shared network, an environment
// sampler, a time step and two output sinks, plus pause/resume/cancel
// control surfaces.
type Simulator struct {
	ships   []*ship.Ship
	network network.WaterBoundarySet
	env     *environment.Sampler

	dtSeconds   float64
	endTimeS    float64 // 0 = run until all ships reach destination
	elapsedS    float64
	outputEveryNTicks int
	tickCount   int

	trajectorySink TrajectorySink
	summarySink    SummarySink
	eventSink      shared.EventSink

	lifecycle *shared.LifecycleStateMachine

	mu       sync.Mutex
	cond     *sync.Cond
	paused   bool
	clock    shared.Clock
}

// New builds a simulator with Δt defaulted to 1 second if dtSeconds<=0.
func New(ships []*ship.Ship, net network.WaterBoundarySet, env *environment.Sampler, dtSeconds float64, clock shared.Clock) *Simulator {
	if dtSeconds <= 0 {
		dtSeconds = defaultTimeStepSeconds
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	s := &Simulator{
		ships:             ships,
		network:           net,
		env:               env,
		dtSeconds:         dtSeconds,
		outputEveryNTicks: 1,
		eventSink:         shared.NullEventSink{},
		lifecycle:         shared.NewLifecycleStateMachine(clock),
		clock:             clock,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// SetEndTime sets the simulated end time in seconds; 0 means run until
// every ship reaches its destination. Safe to call from a control thread.
func (s *Simulator) SetEndTime(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endTimeS = seconds
}

// AddShipToSimulation appends a ship; only safe between ticks, so callers
// typically invoke this while the simulator is paused.
func (s *Simulator) AddShipToSimulation(sh *ship.Ship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ships = append(s.ships, sh)
}

// ShipState returns a snapshot of the named ship's current state, for a
// control surface to report on a running simulation.
func (s *Simulator) ShipState(shipID string) (shared.ReachedDestinationEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range s.ships {
		if sh.UserID == shipID {
			return sh.Snapshot(), true
		}
	}
	return shared.ReachedDestinationEvent{}, false
}

// PauseSimulation sets the pause flag observed at the top of the next tick.
func (s *Simulator) PauseSimulation() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// ResumeSimulation clears the pause flag and wakes the tick loop.
func (s *Simulator) ResumeSimulation() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	s.cond.Broadcast()
}

func (s *Simulator) waitWhilePaused() {
	s.mu.Lock()
	for s.paused {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// Run steps ticks until every ship reaches its destination, the configured
// end time is hit, or ctx is cancelled. Pause and cancellation are checked
// only between ticks, so neither cuts a tick short. A NumericInvariantError
// panicking out of one ship's tick disables that ship's engines rather than
// aborting the run; the updates that ship made earlier in the tick are kept.
func (s *Simulator) Run(ctx context.Context) error {
	if err := s.lifecycle.Start(); err != nil {
		return err
	}

	for {
		s.waitWhilePaused()

		select {
		case <-ctx.Done():
			s.flush()
			_ = s.lifecycle.Stop()
			return ctx.Err()
		default:
		}

		if s.allShipsSettled() {
			break
		}
		if s.endTimeS > 0 && s.elapsedS >= s.endTimeS {
			break
		}

		s.tick()
		s.elapsedS += s.dtSeconds
		s.tickCount++
	}

	s.flush()
	s.emitSummaries()
	return s.lifecycle.Complete()
}

func (s *Simulator) allShipsSettled() bool {
	for _, sh := range s.ships {
		if sh.Loaded && !sh.ReachedDestination {
			return false
		}
	}
	return true
}

// tick steps every eligible ship once, in stable insertion order, and
// emits one trajectory row per ship if this tick is an output tick.
func (s *Simulator) tick() {
	emitRow := s.outputEveryNTicks <= 1 || s.tickCount%s.outputEveryNTicks == 0

	for _, sh := range s.ships {
		if !sh.Loaded || sh.ReachedDestination {
			continue
		}
		s.tickShip(sh)
		if emitRow && s.trajectorySink != nil {
			s.trajectorySink.WriteRow(s.rowFor(sh))
		}
	}
}

// tickShip recovers a NumericInvariantError raised while computing a
// ship's operating point, disabling only that ship instead of aborting the
// whole run.
func (s *Simulator) tickShip(sh *ship.Ship) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*shared.NumericInvariantError); ok {
				for _, p := range sh.Propellers {
					if gb := p.Gearbox(); gb != nil {
						for _, e := range gb.Engines() {
							e.Disable()
						}
					}
				}
				sh.IsOn = false
				s.eventSink.DomainWarningRaised(sh.UserID, shared.NewDomainWarning("simulator", "ship disabled after numeric invariant violation"))
				return
			}
			panic(r)
		}
	}()

	env := environment.Record{}
	if s.env != nil {
		env = s.env.Sample(sh.Position)
	}
	freeFlowSpeed := sh.MaxSpeedMPS
	critical := s.criticalPointsFor(sh)
	sh.Sail(s.dtSeconds, freeFlowSpeed, critical, env)
}

// criticalPointsFor builds this tick's gap triples. It adds one point only:
// the gap to the next path waypoint. Other ships on the same path, ports
// and lower-speed links are not considered.
func (s *Simulator) criticalPointsFor(sh *ship.Ship) []ship.CriticalPoint {
	var points []ship.CriticalPoint
	if sh.Path.LastReachedVertex+1 < len(sh.Path.Points) {
		target := sh.Path.Points[sh.Path.LastReachedVertex+1]
		points = append(points, ship.CriticalPoint{
			GapM:       geo.Distance(sh.Position, target),
			IsFollower: false,
		})
	}
	return points
}

func (s *Simulator) rowFor(sh *ship.Ship) TrajectoryRow {
	totalFuel := 0.0
	for _, liters := range sh.CumulativeFuelLitersByType {
		totalFuel += liters
	}
	return TrajectoryRow{
		SimTimeS:     s.elapsedS,
		ShipID:       sh.UserID,
		LatDeg:       sh.Position.Lat,
		LonDeg:       sh.Position.Lon,
		HeadingDeg:   sh.HeadingDeg,
		SpeedMPS:         sh.SpeedMPS,
		AccelMPS2:        sh.AccelMPS2,
		TotalThrustN:     sh.CurrentThrustN,
		TotalResistanceN: sh.CurrentResistanceN,
		CumEnergyKWh:     sh.CumulativeEnergyKWh,
		CumFuelLiters:    totalFuel,
	}
}

func (s *Simulator) flush() {
	if s.trajectorySink != nil {
		_ = s.trajectorySink.Flush()
	}
}

func (s *Simulator) emitSummaries() {
	if s.summarySink == nil {
		return
	}
	for _, sh := range s.ships {
		fuel := make(map[string]float64, len(sh.CumulativeFuelLitersByType))
		var co2Kg, so2Kg float64
		for ft, liters := range sh.CumulativeFuelLitersByType {
			fuel[ft.String()] = liters
			c, so := energy.EmissionsFromLiters(liters, ft)
			co2Kg += c
			so2Kg += so
		}
		avg := 0.0
		if s.elapsedS > 0 {
			avg = sh.Path.TotalTraveledM / s.elapsedS
		}
		tonKm := (sh.TotalDynamicMassKg() / 1000.0) * (sh.Path.TotalTraveledM / 1000.0)
		energyPerTonKm := 0.0
		if tonKm > 0 {
			energyPerTonKm = sh.CumulativeEnergyKWh / tonKm
		}
		s.summarySink.WriteSummary(ShipSummary{
			ShipID:            sh.UserID,
			TotalDistanceM:    sh.Path.TotalTraveledM,
			TripTimeS:         s.elapsedS,
			AverageSpeedMPS:   avg,
			FuelLitersByType:  fuel,
			CO2Kg:             co2Kg,
			SO2Kg:             so2Kg,
			EnergyPerTonKmKWh: energyPerTonKm,
		})
	}
	_ = s.summarySink.Flush()
}

// SetSinks wires the trajectory/summary/event sinks; nil leaves a sink
// disconnected (no output of that kind).
func (s *Simulator) SetSinks(trajectory TrajectorySink, summary SummarySink, events shared.EventSink) {
	s.trajectorySink = trajectory
	s.summarySink = summary
	if events != nil {
		s.eventSink = events
		for _, sh := range s.ships {
			sh.Sink = events
		}
	}
}

// SetOutputEveryNTicks controls the trajectory row emission frequency.
func (s *Simulator) SetOutputEveryNTicks(n int) {
	if n < 1 {
		n = 1
	}
	s.outputEveryNTicks = n
}

// ElapsedSeconds is the simulated clock, for diagnostics/tests.
func (s *Simulator) ElapsedSeconds() float64 { return s.elapsedS }

// IsPaused reports whether the tick loop is currently blocked in
// waitWhilePaused, for a control surface to report run status.
func (s *Simulator) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// EndTimeSeconds is the configured end time (0 = run until every ship
// reaches its destination), for a control surface to report run status.
func (s *Simulator) EndTimeSeconds() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endTimeS
}
