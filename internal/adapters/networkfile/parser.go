// Package networkfile parses the text-format network description file of
// §6: zero or more [WATERBODY n] sections, each with one [WATER BOUNDRY]
// outer ring and zero or more [LAND] hole rings, case-insensitively
// section-delimited with '#' line comments.
package networkfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/network"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/polygon"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionWaterBoundary
	sectionLand
)

// waterBodyAccum holds one [WATERBODY n] block's rings while it is being
// read: one outer ring plus zero or more land (hole) rings.
type waterBodyAccum struct {
	outer []geo.GPoint
	holes [][]geo.GPoint
}

// Parse reads a network description file and builds a WaterBoundarySet.
// Land rings are recorded both as holes of their owning water body (for
// Contains) and as standalone land polygons (for segment-crossing checks
// against the set as a whole).
func Parse(r io.Reader) (network.WaterBoundarySet, error) {
	scanner := bufio.NewScanner(r)

	var waterBodies []polygon.Polygon
	var allLand []polygon.Polygon

	var current sectionKind
	var ring []geo.GPoint
	var accum *waterBodyAccum

	flushWaterBody := func() error {
		if accum == nil || len(accum.outer) == 0 {
			return nil
		}
		p, err := polygon.NewPolygon(accum.outer, accum.holes)
		if err != nil {
			return err
		}
		waterBodies = append(waterBodies, p)
		accum = nil
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "[WATERBODY"):
			if err := flushWaterBody(); err != nil {
				return network.WaterBoundarySet{}, err
			}
			accum = &waterBodyAccum{}
			current = sectionNone
			continue
		case upper == "[WATER BOUNDRY]" || upper == "[WATER BOUNDARY]":
			if accum == nil {
				accum = &waterBodyAccum{}
			}
			current = sectionWaterBoundary
			ring = nil
			continue
		case upper == "[LAND]":
			current = sectionLand
			ring = nil
			continue
		case upper == "[END]":
			switch current {
			case sectionWaterBoundary:
				if accum != nil {
					accum.outer = ring
				}
			case sectionLand:
				if len(ring) > 0 {
					if accum != nil {
						accum.holes = append(accum.holes, ring)
					}
					landPoly, err := polygon.NewPolygon(ring, nil)
					if err != nil {
						return network.WaterBoundarySet{}, err
					}
					allLand = append(allLand, landPoly)
				}
			}
			ring = nil
			current = sectionNone
			continue
		}

		pt, err := parsePointLine(line)
		if err != nil {
			return network.WaterBoundarySet{}, shared.NewGeometryError(fmt.Sprintf("networkfile: %s", err.Error()))
		}
		if current == sectionWaterBoundary || current == sectionLand {
			ring = append(ring, pt)
		}
	}
	if err := scanner.Err(); err != nil {
		return network.WaterBoundarySet{}, err
	}

	if err := flushWaterBody(); err != nil {
		return network.WaterBoundarySet{}, err
	}

	return network.NewWaterBoundarySet(waterBodies, allLand)
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// parsePointLine parses an "id,lon,lat" row.
func parsePointLine(line string) (geo.GPoint, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return geo.GPoint{}, fmt.Errorf("expected id,lon,lat, got %q", line)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.GPoint{}, fmt.Errorf("invalid longitude in %q: %w", line, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return geo.GPoint{}, fmt.Errorf("invalid latitude in %q: %w", line, err)
	}
	return geo.NewGPoint(lon, lat), nil
}
