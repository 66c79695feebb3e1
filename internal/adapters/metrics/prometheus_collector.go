// Package metrics exposes simulator progress as Prometheus collectors:
// a registry singleton in the style of the rest of this codebase's
// adapters, plus a SimulatorCollector that implements shared.EventSink
// so it can be fanned into the same event pipeline that drives the CSV
// and log sinks.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

const (
	namespace = "shipnetsim"
	subsystem = "sim"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	Registry *prometheus.Registry

	// globalCollector is the singleton simulator metrics collector, set
	// by SetGlobalCollector() when metrics are enabled.
	globalCollector SimulatorRecorder
)

// SimulatorRecorder is the interface application code records simulator
// progress against. SimulatorCollector implements it with real
// Prometheus series; a nil globalCollector makes every Record* call a
// no-op so metrics stay optional.
type SimulatorRecorder interface {
	RecordTick(activeShips int, durationSeconds float64)
	RecordShipReachedDestination(shipID string, tripTimeS, distanceM float64)
	RecordPathDeviation(shipID string)
	RecordSuddenAcceleration(shipID string)
	RecordSlowSpeedOrStopped(shipID string)
	RecordDomainWarning(shipID, source string)
}

// InitRegistry initializes the Prometheus registry. Call once at
// startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry, or nil if metrics
// were never initialized.
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled reports whether metrics collection is enabled.
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCollector sets the global simulator metrics collector.
func SetGlobalCollector(collector SimulatorRecorder) {
	globalCollector = collector
}

// RecordTick records a completed simulation tick globally.
func RecordTick(activeShips int, durationSeconds float64) {
	if globalCollector != nil {
		globalCollector.RecordTick(activeShips, durationSeconds)
	}
}

// SimulatorCollector implements SimulatorRecorder with real Prometheus
// series and also implements shared.EventSink, so it can sit directly
// in a simulator's event sink fan-out.
type SimulatorCollector struct {
	mu sync.Mutex

	activeShips    prometheus.Gauge
	tickDuration   prometheus.Histogram
	reachedTotal     *prometheus.CounterVec
	reachedDistance  *prometheus.HistogramVec
	pathDeviations *prometheus.CounterVec
	suddenAccels   *prometheus.CounterVec
	slowSpeed      *prometheus.CounterVec
	domainWarnings *prometheus.CounterVec
}

var _ shared.EventSink = (*SimulatorCollector)(nil)
var _ SimulatorRecorder = (*SimulatorCollector)(nil)

// NewSimulatorCollector builds and registers a SimulatorCollector
// against reg. Pass GetRegistry() to use the process-wide registry.
func NewSimulatorCollector(reg prometheus.Registerer) *SimulatorCollector {
	c := &SimulatorCollector{
		activeShips: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_ships",
			Help:      "Number of ships still under way in the current tick.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tick_duration_seconds",
			Help:      "Wall-clock time spent advancing one simulation tick.",
			Buckets:   prometheus.DefBuckets,
		}),
		reachedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ships_reached_destination_total",
			Help:      "Ships that reached their final waypoint, by ship ID.",
		}, []string{"ship_id"}),
		reachedDistance: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reached_distance_meters",
			Help:      "Travelled distance recorded for ships that reached their destination.",
			Buckets:   prometheus.ExponentialBuckets(1000, 2, 12),
		}, []string{"ship_id"}),
		pathDeviations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "path_deviations_total",
			Help:      "Path-deviation warnings raised, by ship ID.",
		}, []string{"ship_id"}),
		suddenAccels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sudden_accelerations_total",
			Help:      "Jerk-limit violations raised, by ship ID.",
		}, []string{"ship_id"}),
		slowSpeed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slow_speed_or_stopped_total",
			Help:      "Stationary-under-thrust or out-of-energy warnings, by ship ID.",
		}, []string{"ship_id"}),
		domainWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "domain_warnings_total",
			Help:      "Out-of-range modeling warnings, by ship ID and source.",
		}, []string{"ship_id", "source"}),
	}

	if reg != nil {
		reg.MustRegister(
			c.activeShips, c.tickDuration, c.reachedTotal, c.reachedDistance,
			c.pathDeviations, c.suddenAccels, c.slowSpeed, c.domainWarnings,
		)
	}
	return c
}

func (c *SimulatorCollector) RecordTick(activeShips int, durationSeconds float64) {
	c.activeShips.Set(float64(activeShips))
	c.tickDuration.Observe(durationSeconds)
}

func (c *SimulatorCollector) RecordShipReachedDestination(shipID string, tripTimeS, distanceM float64) {
	c.reachedTotal.WithLabelValues(shipID).Inc()
	c.reachedDistance.WithLabelValues(shipID).Observe(distanceM)
}

func (c *SimulatorCollector) RecordPathDeviation(shipID string) {
	c.pathDeviations.WithLabelValues(shipID).Inc()
}

func (c *SimulatorCollector) RecordSuddenAcceleration(shipID string) {
	c.suddenAccels.WithLabelValues(shipID).Inc()
}

func (c *SimulatorCollector) RecordSlowSpeedOrStopped(shipID string) {
	c.slowSpeed.WithLabelValues(shipID).Inc()
}

func (c *SimulatorCollector) RecordDomainWarning(shipID, source string) {
	c.domainWarnings.WithLabelValues(shipID, source).Inc()
}

// ReachedDestination implements shared.EventSink.
func (c *SimulatorCollector) ReachedDestination(e shared.ReachedDestinationEvent) {
	c.RecordShipReachedDestination(e.ShipID, 0, e.TravelledDistance)
}

// PathDeviation implements shared.EventSink.
func (c *SimulatorCollector) PathDeviation(e shared.PathDeviationEvent) {
	c.RecordPathDeviation(e.ShipID)
}

// SuddenAcceleration implements shared.EventSink.
func (c *SimulatorCollector) SuddenAcceleration(e shared.SuddenAccelerationEvent) {
	c.RecordSuddenAcceleration(e.ShipID)
}

// SlowSpeedOrStopped implements shared.EventSink.
func (c *SimulatorCollector) SlowSpeedOrStopped(e shared.SlowSpeedEvent) {
	c.RecordSlowSpeedOrStopped(e.ShipID)
}

// DomainWarningRaised implements shared.EventSink.
func (c *SimulatorCollector) DomainWarningRaised(shipID string, warning error) {
	source := "unknown"
	if dw, ok := warning.(*shared.DomainWarning); ok {
		source = dw.Source
	}
	c.RecordDomainWarning(shipID, source)
}
