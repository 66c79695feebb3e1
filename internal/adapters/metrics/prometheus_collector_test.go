package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/adapters/metrics"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

func TestSimulatorCollector_ReachedDestinationIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewSimulatorCollector(reg)

	var sink shared.EventSink = c
	sink.ReachedDestination(shared.ReachedDestinationEvent{ShipID: "ship-1", TravelledDistance: 5000})

	families, err := reg.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "shipnetsim_sim_ships_reached_destination_total" {
			found = f
		}
	}
	require.NotNil(t, found, "expected ships_reached_destination_total to be registered")
	require.Len(t, found.Metric, 1)
	assert.Equal(t, 1.0, found.Metric[0].GetCounter().GetValue())
}

func TestSimulatorCollector_RecordTickUpdatesGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewSimulatorCollector(reg)

	c.RecordTick(3, 0.002)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "shipnetsim_sim_active_ships" {
			found = f
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 3.0, found.Metric[0].GetGauge().GetValue())
}

func TestRecordTick_NoopWithoutGlobalCollector(t *testing.T) {
	metrics.SetGlobalCollector(nil)
	metrics.RecordTick(1, 0.1) // must not panic
}
