// Package csvsink writes simulator trajectory rows to a CSV file, one row
// per ship per output tick, per the column list of §6.
package csvsink

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
)

var header = []string{
	"sim_time_s", "ship_id", "lat_deg", "lon_deg", "heading_deg",
	"speed_m_s", "acceleration_m_s2", "total_thrust_N", "total_resistance_N",
	"cum_energy_kWh", "cum_fuel_L",
}

// Sink implements simulator.TrajectorySink over a csv.Writer. The header is
// written lazily, on the first row, so an empty run produces an empty file
// rather than a header-only one.
type Sink struct {
	w           *csv.Writer
	wroteHeader bool
}

// New wraps w; the caller owns closing the underlying writer.
func New(w io.Writer) *Sink {
	return &Sink{w: csv.NewWriter(w)}
}

func (s *Sink) WriteRow(row simulator.TrajectoryRow) {
	if !s.wroteHeader {
		_ = s.w.Write(header)
		s.wroteHeader = true
	}
	record := []string{
		formatFloat(row.SimTimeS),
		row.ShipID,
		formatFloat(row.LatDeg),
		formatFloat(row.LonDeg),
		formatFloat(row.HeadingDeg),
		formatFloat(row.SpeedMPS),
		formatFloat(row.AccelMPS2),
		formatFloat(row.TotalThrustN),
		formatFloat(row.TotalResistanceN),
		formatFloat(row.CumEnergyKWh),
		formatFloat(row.CumFuelLiters),
	}
	_ = s.w.Write(record)
}

func (s *Sink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
