package geo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Serialize encodes a GPoint to the fixed big-endian record of §6:
// 8 bytes lon, 8 bytes lat, 8 bytes user-id length, userIDLen bytes,
// 1 byte port flag, 8 bytes dwell seconds (float64). Doubles are bit-cast
// to uint64 before the byte swap, matching §4.A/§6.
func Serialize(p GPoint) []byte {
	buf := new(bytes.Buffer)
	writeFloat64(buf, p.Lon)
	writeFloat64(buf, p.Lat)

	idBytes := []byte(p.UserID)
	binary.Write(buf, binary.BigEndian, uint64(len(idBytes)))
	buf.Write(idBytes)

	if p.IsPort {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}

	writeFloat64(buf, p.DwellTime.Seconds())

	return buf.Bytes()
}

// Deserialize decodes a GPoint from the wire format produced by Serialize.
func Deserialize(data []byte) (GPoint, error) {
	r := bytes.NewReader(data)

	lon, err := readFloat64(r)
	if err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize lon: %w", err)
	}
	lat, err := readFloat64(r)
	if err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize lat: %w", err)
	}

	var idLen uint64
	if err := binary.Read(r, binary.BigEndian, &idLen); err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize user-id length: %w", err)
	}
	idBytes := make([]byte, idLen)
	if _, err := io.ReadFull(r, idBytes); err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize user-id: %w", err)
	}

	portFlag, err := r.ReadByte()
	if err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize port flag: %w", err)
	}

	dwellSeconds, err := readFloat64(r)
	if err != nil {
		return GPoint{}, fmt.Errorf("geo: deserialize dwell time: %w", err)
	}

	return GPoint{
		Lon:       lon,
		Lat:       lat,
		UserID:    string(idBytes),
		IsPort:    portFlag != 0,
		DwellTime: secondsToDuration(dwellSeconds),
	}, nil
}

func writeFloat64(buf *bytes.Buffer, v float64) {
	bits := math.Float64bits(v)
	binary.Write(buf, binary.BigEndian, bits)
}

func readFloat64(r *bytes.Reader) (float64, error) {
	var bits uint64
	if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
