package ship

// debitEnergy calls engine.Consume(dt) exactly once per unique engine ID
// across every propeller's gearbox (a twin-screw ship sharing one engine
// bank must not be debited twice), accumulating liters per fuel type and
// total kWh, and derives is_on/out_of_energy from whether any engine is
// still working.
func (s *Ship) debitEnergy(dtSeconds float64) {
	seen := make(map[string]bool)
	anyOn := false

	for _, p := range s.Propellers {
		gb := p.Gearbox()
		if gb == nil {
			continue
		}
		for _, e := range gb.Engines() {
			if seen[e.ID()] {
				continue
			}
			seen[e.ID()] = true

			data := e.Consume(dtSeconds)
			s.CumulativeEnergyKWh += data.EnergyConsumedKWh
			s.CumulativeFuelLitersByType[data.Fuel.FuelType] += data.Fuel.VolumeLiters

			if !data.Supplied {
				s.OutOfEnergy = true
			}
			if e.IsOn() {
				anyOn = true
			}
		}
	}

	s.IsOn = anyOn
}
