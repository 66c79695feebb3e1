package ship

import (
	"testing"
	"time"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/environment"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/propulsion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptor() Descriptor {
	return Descriptor{
		ID:                         "ship-1",
		WaterlineLengthM:           120,
		BeamM:                      20,
		DraftAtForwardM:            7,
		DraftAtAftM:                7,
		BlockCoef:                  0.65,
		PrismaticCoef:              0.62,
		MidshipSectionCoef:         0.98,
		LightshipWeightKg:          8_000_000,
		CargoWeightKg:              2_000_000,
		PropellerCount:             1,
		EnginesCountPerPropeller:   1,
		PropellerDiameterM:         5,
		PropellerPitchRatio:        1.0,
		PropellerExpandedAreaRatio: 0.65,
		PropellerBladesCount:       4,
		EngineMCRPowerKW:           5000,
		MaxSpeedMPS:                12,
		FuelType:                   "Diesel",
		TankSizeLiters:             1_000_000,
		MaxRudderAngleDeg:          35,
	}
}

func sampleEngineCurve() []propulsion.Properties {
	return []propulsion.Properties{
		{BrakePowerKW: 0, RPM: 0, Efficiency: 0.3},
		{BrakePowerKW: 5000, RPM: 500, Efficiency: 0.45},
	}
}

func TestParseDescriptorRejectsMissingRequiredFields(t *testing.T) {
	_, err := ParseDescriptor(map[string]string{})
	assert.Error(t, err)
}

func TestParseDescriptorAcceptsCompleteMap(t *testing.T) {
	raw := map[string]string{
		"ID": "s1", "WaterlineLength": "120", "Beam": "20", "BlockCoef": "0.65",
		"PropellerCount": "1", "EnginesCountPerPropeller": "1",
		"PropellerDiameter": "5", "PropellerPitch": "1.0", "PropellerExpandedAreaRatio": "0.65",
		"PropellerBladesCount": "4", "EngineMCRPower": "5000", "MaxSpeed": "12",
		"FuelType": "Diesel", "TankSize": "1000000", "MaxRudderAngle": "35",
	}
	d, err := ParseDescriptor(raw)
	require.NoError(t, err)
	assert.Equal(t, "s1", d.ID)
}

func TestBuildProducesShipWithWiredPropulsion(t *testing.T) {
	s, err := Build(sampleDescriptor(), sampleEngineCurve(), time.Now())
	require.NoError(t, err)
	assert.Len(t, s.Propellers, 1)
	assert.Len(t, s.EnergySources, 1)
}

func TestLoadResetsCountersAndSetsPosition(t *testing.T) {
	s, err := Build(sampleDescriptor(), sampleEngineCurve(), time.Now())
	require.NoError(t, err)

	points := []geo.GPoint{geo.NewGPoint(0, 0), geo.NewGPoint(0, 1)}
	lines := []geo.GLine{geo.NewGLine(points[0], points[1])}
	s.Load(points, lines)

	assert.True(t, s.Loaded)
	assert.Equal(t, points[0], s.Position)
	assert.Equal(t, 0.0, s.SpeedMPS)
}

func TestSailAdvancesPositionTowardsTarget(t *testing.T) {
	s, err := Build(sampleDescriptor(), sampleEngineCurve(), time.Now())
	require.NoError(t, err)

	points := []geo.GPoint{geo.NewGPoint(0, 0), geo.NewGPoint(0, 1)}
	lines := []geo.GLine{geo.NewGLine(points[0], points[1])}
	s.Load(points, lines)
	s.HeadingDeg = 0
	s.SpeedMPS = 5

	env := environment.Record{DepthM: 50}
	s.Sail(1.0, 12.0, nil, env)

	assert.NotEqual(t, points[0], s.Position)
}

func TestSailStopsAtDestination(t *testing.T) {
	s, err := Build(sampleDescriptor(), sampleEngineCurve(), time.Now())
	require.NoError(t, err)

	start := geo.NewGPoint(0, 0)
	nearby := geo.PointAtDistanceAndHeading(start, 2, 90)
	points := []geo.GPoint{start, nearby}
	lines := []geo.GLine{geo.NewGLine(points[0], points[1])}
	s.Load(points, lines)
	s.SpeedMPS = 5

	env := environment.Record{DepthM: 50}
	s.Sail(1.0, 12.0, nil, env)

	assert.True(t, s.ReachedDestination)
	assert.Equal(t, 0.0, s.SpeedMPS)
}

func TestTotalDynamicMassIncludesAddedMass(t *testing.T) {
	s, err := Build(sampleDescriptor(), sampleEngineCurve(), time.Now())
	require.NoError(t, err)
	s.LightshipWeightKg = 1000
	s.CargoWeightKg = 500
	s.AddedMassKg = 100
	assert.Equal(t, 1600.0, s.TotalDynamicMassKg())
}
