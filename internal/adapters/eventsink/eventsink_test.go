package eventsink

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSinkWritesReadableLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.ReachedDestination(shared.ReachedDestinationEvent{ShipID: "s1", TravelledDistance: 100})
	sink.DomainWarningRaised("s1", errors.New("boom"))

	out := buf.String()
	assert.True(t, strings.Contains(out, "s1"))
	assert.True(t, strings.Contains(out, "boom"))
}

func TestJSONFileSinkEncodesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONFileSink(&buf)

	sink.PathDeviation(shared.PathDeviationEvent{ShipID: "s1", LateralDistanceM: 12})
	sink.SuddenAcceleration(shared.SuddenAccelerationEvent{ShipID: "s1", JerkMS3: 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "path_deviation", first["type"])
}
