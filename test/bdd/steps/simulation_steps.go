package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/polygon"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/propulsion"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/ship"
)

// simulationContext holds the fleet and simulator under construction across
// a single scenario's steps.
type simulationContext struct {
	water   network.WaterBoundarySet
	ships   map[string]*ship.Ship
	sim     *simulator.Simulator
	runErr  error
	runDone chan error
}

func (sc *simulationContext) reset() {
	sc.ships = make(map[string]*ship.Ship)
	sc.runErr = nil
	sc.runDone = nil
}

func (sc *simulationContext) aWaterRegionCoveringTheShipsPath() error {
	water, err := polygon.NewPolygon([]geo.GPoint{
		geo.NewGPoint(-1, -1), geo.NewGPoint(1, -1), geo.NewGPoint(1, 1), geo.NewGPoint(-1, 1),
	}, nil)
	if err != nil {
		return err
	}
	set, err := network.NewWaterBoundarySet([]polygon.Polygon{water}, nil)
	if err != nil {
		return err
	}
	sc.water = set
	return nil
}

func (sc *simulationContext) aShipWithMaxSpeedMetersPerSecondFollowingAShortPath(shipID string, maxSpeed float64) error {
	d := ship.Descriptor{
		ID: shipID, WaterlineLengthM: 80, BeamM: 14, BlockCoef: 0.6,
		LightshipWeightKg: 3_000_000, PropellerCount: 1, EnginesCountPerPropeller: 1,
		PropellerDiameterM: 4, PropellerPitchRatio: 0.9, PropellerExpandedAreaRatio: 0.55,
		PropellerBladesCount: 4, EngineMCRPowerKW: 2000, MaxSpeedMPS: maxSpeed,
		FuelType: "Diesel", TankSizeLiters: 500000, MaxRudderAngleDeg: 30,
		TankInitialFillPercent: 100, TankDepthOfDischargeFrac: 0.1,
	}
	curve := []propulsion.Properties{
		{BrakePowerKW: 0, RPM: 0, Efficiency: 0.3},
		{BrakePowerKW: 5000, RPM: 500, Efficiency: 0.45},
	}
	sh, err := ship.Build(d, curve, time.Now())
	if err != nil {
		return err
	}

	points := []geo.GPoint{geo.NewGPoint(0, 0), geo.NewGPoint(0, 0.001)}
	lines := []geo.GLine{geo.NewGLine(points[0], points[1])}
	sh.Load(points, lines)

	sc.ships[shipID] = sh
	return nil
}

func (sc *simulationContext) aSimulatorWithTimeStepSecondsAndEndTimeSeconds(dt, endTime float64) error {
	fleet := make([]*ship.Ship, 0, len(sc.ships))
	for _, sh := range sc.ships {
		fleet = append(fleet, sh)
	}
	sc.sim = simulator.New(fleet, sc.water, nil, dt, nil)
	sc.sim.SetEndTime(endTime)
	return nil
}

func (sc *simulationContext) theSimulatorIsPausedBeforeItStarts() error {
	sc.sim.PauseSimulation()
	return nil
}

func (sc *simulationContext) iRunTheSimulatorToCompletion() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sc.runErr = sc.sim.Run(ctx)
	return nil
}

func (sc *simulationContext) iRunTheSimulatorInTheBackground() error {
	sc.runDone = make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		sc.runDone <- sc.sim.Run(ctx)
	}()
	return nil
}

func (sc *simulationContext) iWaitBriefly() error {
	time.Sleep(50 * time.Millisecond)
	return nil
}

func (sc *simulationContext) theSimulatorShouldReportItselfPaused() error {
	if !sc.sim.IsPaused() {
		return fmt.Errorf("expected simulator to report paused, got running")
	}
	return nil
}

func (sc *simulationContext) iResumeTheSimulator() error {
	sc.sim.ResumeSimulation()
	select {
	case sc.runErr = <-sc.runDone:
	case <-time.After(2 * time.Second):
		return fmt.Errorf("simulator did not complete after resume")
	}
	return nil
}

func (sc *simulationContext) theRunShouldFinishWithoutError() error {
	return sc.runErr
}

func (sc *simulationContext) shipShouldHaveReachedItsDestination(shipID string) error {
	sh, ok := sc.ships[shipID]
	if !ok {
		return fmt.Errorf("unknown ship %s", shipID)
	}
	if !sh.ReachedDestination {
		return fmt.Errorf("ship %s did not reach its destination", shipID)
	}
	return nil
}

// InitializeSimulationScenario registers the simulation.feature step
// definitions against sc.
func InitializeSimulationScenario(sc *godog.ScenarioContext) {
	ctx := &simulationContext{}

	sc.Before(func(goCtx context.Context, s *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return goCtx, nil
	})

	sc.Step(`^a water region covering the ship's path$`, ctx.aWaterRegionCoveringTheShipsPath)
	sc.Step(`^a ship "([^"]*)" with max speed (\d+) meters per second following a short path$`, ctx.aShipWithMaxSpeedMetersPerSecondFollowingAShortPath)
	sc.Step(`^a simulator with time step (\d+) seconds and end time (\d+) seconds$`, ctx.aSimulatorWithTimeStepSecondsAndEndTimeSeconds)
	sc.Step(`^the simulator is paused before it starts$`, ctx.theSimulatorIsPausedBeforeItStarts)
	sc.Step(`^I run the simulator to completion$`, ctx.iRunTheSimulatorToCompletion)
	sc.Step(`^I run the simulator in the background$`, ctx.iRunTheSimulatorInTheBackground)
	sc.Step(`^I wait briefly$`, ctx.iWaitBriefly)
	sc.Step(`^the simulator should report itself paused$`, ctx.theSimulatorShouldReportItselfPaused)
	sc.Step(`^I resume the simulator$`, ctx.iResumeTheSimulator)
	sc.Step(`^the run should finish without error$`, ctx.theRunShouldFinishWithoutError)
	sc.Step(`^ship "([^"]*)" should have reached its destination$`, ctx.shipShouldHaveReachedItsDestination)
}
