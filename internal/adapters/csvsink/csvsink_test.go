package csvsink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRowIncludesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)

	sink.WriteRow(simulator.TrajectoryRow{SimTimeS: 1, ShipID: "s1", SpeedMPS: 4.5})
	sink.WriteRow(simulator.TrajectoryRow{SimTimeS: 2, ShipID: "s1", SpeedMPS: 4.6})
	require.NoError(t, sink.Flush())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "sim_time_s"))
	assert.Contains(t, out, "s1")
}

func TestWriteRowColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)
	sink.WriteRow(simulator.TrajectoryRow{ShipID: "s1"})
	require.NoError(t, sink.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "sim_time_s,ship_id,lat_deg,lon_deg,heading_deg,speed_m_s,acceleration_m_s2,total_thrust_N,total_resistance_N,cum_energy_kWh,cum_fuel_L", lines[0])
}
