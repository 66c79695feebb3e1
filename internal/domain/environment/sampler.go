// Package environment samples sea-state rasters (salinity, wave height and
// period, wind, depth) at a geodetic position and derives wave frequency
// and length.
package environment

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
)

const (
	defaultSalinity  = 0.0
	defaultWaveHeightM = 0.0
	defaultDepthM    = 50.0
	defaultWavePeriodS = 40.0
)

// Record is a point sample of the sea state, plus the quantities derived
// from it.
type Record struct {
	SalinityPPT   float64
	WaveHeightM   float64
	WavePeriodS   float64
	WindEastMPS   float64
	WindNorthMPS  float64
	DepthM        float64

	WaveFrequencyHz     float64
	WaveAngularFreqRadS float64
	WaveLengthM         float64
}

// cell is one raster grid node.
type cell struct {
	salinity   float64
	waveHeight float64
	wavePeriod float64
	windEast   float64
	windNorth  float64
	depth      float64
	set        bool
}

// Sampler is a rectangular raster, indexed by normalized (lon, lat) mapped
// to row/col by linear scaling between its min and max map points. It is
// read-only after Load, so it may be shared across ships without locking.
type Sampler struct {
	minLon, minLat, maxLon, maxLat float64
	cols, rows                     int
	grid                           []cell
}

// NewSampler builds an empty raster over the given bounds with the given
// resolution. Cells are filled in afterwards via Set; unset cells sample
// as the documented defaults.
func NewSampler(minLon, minLat, maxLon, maxLat float64, cols, rows int) *Sampler {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Sampler{
		minLon: minLon, minLat: minLat, maxLon: maxLon, maxLat: maxLat,
		cols: cols, rows: rows,
		grid: make([]cell, cols*rows),
	}
}

// Set records a raster value at grid cell (col, row). NaN values are
// treated as unset and will fall back to defaults when sampled.
func (s *Sampler) Set(col, row int, salinity, waveHeight, wavePeriod, windEast, windNorth, depth float64) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.grid[row*s.cols+col] = cell{
		salinity: salinity, waveHeight: waveHeight, wavePeriod: wavePeriod,
		windEast: windEast, windNorth: windNorth, depth: depth, set: true,
	}
}

func isUsable(v float64) bool {
	return !math.IsNaN(v)
}

// Sample returns the environment record at p, falling back to defaults for
// missing or NaN raster cells and deriving wave frequency/length.
func (s *Sampler) Sample(p geo.GPoint) Record {
	c := s.cellAt(p)

	r := Record{
		SalinityPPT: defaultSalinity,
		WaveHeightM: defaultWaveHeightM,
		WavePeriodS: defaultWavePeriodS,
		DepthM:      defaultDepthM,
	}
	if c.set {
		if isUsable(c.salinity) {
			r.SalinityPPT = c.salinity
		}
		if isUsable(c.waveHeight) {
			r.WaveHeightM = c.waveHeight
		}
		if isUsable(c.wavePeriod) && c.wavePeriod > 0 {
			r.WavePeriodS = c.wavePeriod
		}
		if isUsable(c.windEast) {
			r.WindEastMPS = c.windEast
		}
		if isUsable(c.windNorth) {
			r.WindNorthMPS = c.windNorth
		}
		if isUsable(c.depth) {
			r.DepthM = c.depth
		}
	}

	r.WaveFrequencyHz = 1.0 / r.WavePeriodS
	r.WaveAngularFreqRadS = 2 * math.Pi * r.WaveFrequencyHz

	windSpeed := math.Hypot(r.WindEastMPS, r.WindNorthMPS)
	if r.WaveFrequencyHz > 0 {
		r.WaveLengthM = windSpeed / r.WaveFrequencyHz
	}

	return r
}

func (s *Sampler) cellAt(p geo.GPoint) cell {
	if s.maxLon <= s.minLon || s.maxLat <= s.minLat {
		return cell{}
	}
	lonT := (p.Lon - s.minLon) / (s.maxLon - s.minLon)
	latT := (p.Lat - s.minLat) / (s.maxLat - s.minLat)
	lonT = math.Max(0, math.Min(1, lonT))
	latT = math.Max(0, math.Min(1, latT))

	col := int(lonT * float64(s.cols-1))
	row := int(latT * float64(s.rows-1))
	return s.grid[row*s.cols+col]
}
