// Package txtsink writes the end-of-run summary TXT: one block per ship
// with total distance, trip time, average speed, per-fuel consumption,
// CO2/SO2 mass and energy per ton-km, per §6.
package txtsink

import (
	"fmt"
	"io"
	"sort"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
)

// Sink implements simulator.SummarySink over an io.Writer.
type Sink struct {
	w io.Writer
}

func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) WriteSummary(sum simulator.ShipSummary) {
	fmt.Fprintf(s.w, "Ship: %s\n", sum.ShipID)
	fmt.Fprintf(s.w, "  Total distance:    %.1f m\n", sum.TotalDistanceM)
	fmt.Fprintf(s.w, "  Trip time:         %.1f s\n", sum.TripTimeS)
	fmt.Fprintf(s.w, "  Average speed:     %.3f m/s\n", sum.AverageSpeedMPS)
	fmt.Fprintf(s.w, "  Energy per ton-km: %.6f kWh\n", sum.EnergyPerTonKmKWh)
	fmt.Fprintf(s.w, "  CO2 mass:          %.3f kg\n", sum.CO2Kg)
	fmt.Fprintf(s.w, "  SO2 mass:          %.3f kg\n", sum.SO2Kg)

	fuelTypes := make([]string, 0, len(sum.FuelLitersByType))
	for ft := range sum.FuelLitersByType {
		fuelTypes = append(fuelTypes, ft)
	}
	sort.Strings(fuelTypes)
	fmt.Fprintf(s.w, "  Fuel consumption:\n")
	for _, ft := range fuelTypes {
		fmt.Fprintf(s.w, "    %-10s %.3f L\n", ft, sum.FuelLitersByType[ft])
	}
	fmt.Fprintln(s.w)
}

func (s *Sink) Flush() error {
	if f, ok := s.w.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}
