// Package eventsink provides shared.EventSink implementations: a stdlib-log
// sink for operational visibility and a JSON-lines file sink for durable
// event capture, mirroring how the rest of this codebase logs operational
// state.
package eventsink

import (
	"encoding/json"
	"io"
	"log"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// LogSink writes every event as a line on the standard logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink wraps l, or the default package-level logger if l is nil.
func NewLogSink(l *log.Logger) *LogSink {
	if l == nil {
		l = log.Default()
	}
	return &LogSink{logger: l}
}

func (s *LogSink) ReachedDestination(e shared.ReachedDestinationEvent) {
	s.logger.Printf("ship %s reached destination: distance=%.1fm speed=%.2fm/s energy=%.2fkWh",
		e.ShipID, e.TravelledDistance, e.CurrentSpeed, e.Consumption.EnergyKWh)
}

func (s *LogSink) PathDeviation(e shared.PathDeviationEvent) {
	s.logger.Printf("ship %s path deviation: lateral=%.2fm heading=%.2fdeg",
		e.ShipID, e.LateralDistanceM, e.HeadingDeviationD)
}

func (s *LogSink) SuddenAcceleration(e shared.SuddenAccelerationEvent) {
	s.logger.Printf("ship %s sudden acceleration: jerk=%.3fm/s3", e.ShipID, e.JerkMS3)
}

func (s *LogSink) SlowSpeedOrStopped(e shared.SlowSpeedEvent) {
	s.logger.Printf("ship %s slow/stopped: speed=%.2fm/s reason=%s", e.ShipID, e.Speed, e.Reason)
}

func (s *LogSink) DomainWarningRaised(shipID string, warning error) {
	s.logger.Printf("ship %s domain warning: %v", shipID, warning)
}

// JSONFileSink appends one JSON object per line per event, keyed by a
// "type" discriminator, to an underlying writer.
type JSONFileSink struct {
	enc *json.Encoder
}

func NewJSONFileSink(w io.Writer) *JSONFileSink {
	return &JSONFileSink{enc: json.NewEncoder(w)}
}

type jsonEnvelope struct {
	Type  string      `json:"type"`
	Event interface{} `json:"event"`
}

func (s *JSONFileSink) write(kind string, event interface{}) {
	_ = s.enc.Encode(jsonEnvelope{Type: kind, Event: event})
}

func (s *JSONFileSink) ReachedDestination(e shared.ReachedDestinationEvent) {
	s.write("reached_destination", e)
}

func (s *JSONFileSink) PathDeviation(e shared.PathDeviationEvent) {
	s.write("path_deviation", e)
}

func (s *JSONFileSink) SuddenAcceleration(e shared.SuddenAccelerationEvent) {
	s.write("sudden_acceleration", e)
}

func (s *JSONFileSink) SlowSpeedOrStopped(e shared.SlowSpeedEvent) {
	s.write("slow_speed_or_stopped", e)
}

func (s *JSONFileSink) DomainWarningRaised(shipID string, warning error) {
	s.write("domain_warning", struct {
		ShipID  string `json:"ship_id"`
		Warning string `json:"warning"`
	}{ShipID: shipID, Warning: warning.Error()})
}
