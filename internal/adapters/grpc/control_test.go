package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/resistance"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

func newTestControlServer() *ControlServer {
	sim := simulator.New(nil, network.WaterBoundarySet{}, nil, 1.0, shared.NewRealClock())
	return NewControlServer(sim)
}

func TestControlServer_PauseResumeRoundTrip(t *testing.T) {
	s := newTestControlServer()

	_, err := s.Pause(context.Background(), &PauseRequest{})
	require.NoError(t, err)
	assert.True(t, s.sim.IsPaused())

	_, err = s.Resume(context.Background(), &ResumeRequest{})
	require.NoError(t, err)
	assert.False(t, s.sim.IsPaused())
}

func TestControlServer_SetEndTime(t *testing.T) {
	s := newTestControlServer()

	_, err := s.SetEndTime(context.Background(), &SetEndTimeRequest{Seconds: 3600})
	require.NoError(t, err)
	assert.Equal(t, 3600.0, s.sim.EndTimeSeconds())
}

func TestControlServer_AddShipThenGetShipState(t *testing.T) {
	s := newTestControlServer()

	req := &AddShipRequest{
		ShipID: "ship-1",
		Hull: resistance.HullForm{
			WaterlineLengthM:  100,
			BeamM:             16,
			DraftForwardM:     6,
			DraftAftM:         6,
			MeanDraftM:        6,
			BlockCoef:         0.7,
			WaterplaneAreaCoef: 0.8,
		},
		MaxSpeedMPS: 8,
		PathPoints: []LatLon{
			{LonDeg: 0, LatDeg: 0},
			{LonDeg: 0.1, LatDeg: 0.1},
		},
	}
	_, err := s.AddShip(context.Background(), req)
	require.NoError(t, err)

	resp, err := s.GetShipState(context.Background(), &GetShipStateRequest{ShipID: "ship-1"})
	require.NoError(t, err)
	assert.True(t, resp.Found)
}

func TestControlServer_GetShipState_UnknownShip(t *testing.T) {
	s := newTestControlServer()

	resp, err := s.GetShipState(context.Background(), &GetShipStateRequest{ShipID: "missing"})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestJSONCodec_RoundTrips(t *testing.T) {
	c := jsonCodec{}
	in := &SetEndTimeRequest{Seconds: 42.5}

	data, err := c.Marshal(in)
	require.NoError(t, err)

	var out SetEndTimeRequest
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, in.Seconds, out.Seconds)
	assert.Equal(t, "json", c.Name())
}
