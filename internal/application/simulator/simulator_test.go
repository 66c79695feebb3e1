package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/polygon"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/propulsion"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/ship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTrajectorySink struct {
	rows []TrajectoryRow
}

func (r *recordingTrajectorySink) WriteRow(row TrajectoryRow) { r.rows = append(r.rows, row) }
func (r *recordingTrajectorySink) Flush() error               { return nil }

func smallWaterRegion(t *testing.T) network.WaterBoundarySet {
	t.Helper()
	water, err := polygon.NewPolygon([]geo.GPoint{
		geo.NewGPoint(-1, -1), geo.NewGPoint(1, -1), geo.NewGPoint(1, 1), geo.NewGPoint(-1, 1),
	}, nil)
	require.NoError(t, err)
	set, err := network.NewWaterBoundarySet([]polygon.Polygon{water}, nil)
	require.NoError(t, err)
	return set
}

func testShip(t *testing.T) *ship.Ship {
	t.Helper()
	d := Descriptor()
	curve := []propulsion.Properties{
		{BrakePowerKW: 0, RPM: 0, Efficiency: 0.3},
		{BrakePowerKW: 5000, RPM: 500, Efficiency: 0.45},
	}
	s, err := ship.Build(d, curve, time.Now())
	require.NoError(t, err)

	points := []geo.GPoint{geo.NewGPoint(0, 0), geo.NewGPoint(0, 0.001)}
	lines := []geo.GLine{geo.NewGLine(points[0], points[1])}
	s.Load(points, lines)
	return s
}

// Descriptor is a small helper building a minimal valid ship descriptor
// for simulator-level tests, kept local to this package to avoid exporting
// test-only fixtures from the ship package itself.
func Descriptor() ship.Descriptor {
	return ship.Descriptor{
		ID: "sim-ship-1", WaterlineLengthM: 80, BeamM: 14, BlockCoef: 0.6,
		LightshipWeightKg: 3_000_000, PropellerCount: 1, EnginesCountPerPropeller: 1,
		PropellerDiameterM: 4, PropellerPitchRatio: 0.9, PropellerExpandedAreaRatio: 0.55,
		PropellerBladesCount: 4, EngineMCRPowerKW: 2000, MaxSpeedMPS: 8,
		FuelType: "Diesel", TankSizeLiters: 500000, MaxRudderAngleDeg: 30,
		TankInitialFillPercent: 100, TankDepthOfDischargeFrac: 0.1,
	}
}

func TestSimulatorRunReachesDestinationForAllShips(t *testing.T) {
	sim := New([]*ship.Ship{testShip(t)}, smallWaterRegion(t), nil, 1.0, nil)
	sim.SetEndTime(600)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := sim.Run(ctx)
	require.NoError(t, err)
}

func TestSimulatorEmitsTrajectoryRows(t *testing.T) {
	sim := New([]*ship.Ship{testShip(t)}, smallWaterRegion(t), nil, 1.0, nil)
	sink := &recordingTrajectorySink{}
	sim.SetSinks(sink, nil, nil)
	sim.SetEndTime(600)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sim.Run(ctx))

	assert.NotEmpty(t, sink.rows)
}

func TestPauseResumeDoesNotDeadlock(t *testing.T) {
	sim := New([]*ship.Ship{testShip(t)}, smallWaterRegion(t), nil, 1.0, nil)
	sim.SetEndTime(600)
	sim.PauseSimulation()

	done := make(chan error, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { done <- sim.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	sim.ResumeSimulation()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not complete after resume")
	}
}
