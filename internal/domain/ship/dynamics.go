package ship

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/environment"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// CriticalPoint is one of the K gap triples the acceleration controller
// considers each tick: the next same-path ship ahead, the next port, or
// the next lower-speed-limit link.
type CriticalPoint struct {
	GapM          float64
	IsFollower    bool
	LeaderSpeedMPS float64
}

// accelerate implements the per-critical-point Fritzsche-style
// car-following step of §4.L.
func (s *Ship) accelerate(cp CriticalPoint, freeFlowSpeedMPS, dtSeconds, aMax float64) float64 {
	const reactionHorizonS = reactionHorizonSeconds
	const followGapHeadwayS = 10.0

	if cp.IsFollower {
		uHat := math.Min(cp.GapM/followGapHeadwayS, freeFlowSpeedMPS)
		aDecel := -aMax
		lower := s.SpeedMPS + aDecel*dtSeconds
		upper := s.SpeedMPS + aMax*dtSeconds
		uHat = math.Max(lower, math.Min(upper, uHat))
		an2 := (uHat - s.SpeedMPS) / dtSeconds

		an1 := aMax
		if s.SpeedMPS >= freeFlowSpeedMPS {
			an1 = 0
		}

		gamma := 0.0
		if s.SpeedMPS > cp.LeaderSpeedMPS {
			gamma = 1.0
		}
		return gamma*an2 + (1-gamma)*an1
	}

	safeGap := s.computeSafeGap(freeFlowSpeedMPS, aMax, dtSeconds)
	if cp.GapM > safeGap && aMax > 0 {
		if s.SpeedMPS >= freeFlowSpeedMPS {
			return 0
		}
		return aMax
	}

	uHat := math.Min(cp.GapM/followGapHeadwayS, freeFlowSpeedMPS)
	lower := s.SpeedMPS - aMax*dtSeconds
	upper := s.SpeedMPS + aMax*dtSeconds
	uHat = math.Max(lower, math.Min(upper, uHat))
	return (uHat - s.SpeedMPS) / dtSeconds
}

// computeSafeGap integrates deceleration down from freeFlowSpeedMPS over a
// reaction horizon of reactionHorizonSeconds, in fixed Δt=safeGapStepSeconds
// steps, stopping early once speed drops below safeGapStopSpeedMPS. This
// replaces the source's implicit fixed-point (deceleration depends on
// current thrust, which depends on speed) with an explicit bounded Euler
// integration capped at maxSafeGapIterations steps.
func (s *Ship) computeSafeGap(freeFlowSpeedMPS, aMax, _ float64) float64 {
	v := freeFlowSpeedMPS
	gap := 0.0
	decel := math.Max(aMax*0.5, 0.1)

	steps := int(reactionHorizonSeconds / safeGapStepSeconds)
	if steps > maxSafeGapIterations {
		steps = maxSafeGapIterations
	}
	for i := 0; i < steps && v > safeGapStopSpeedMPS; i++ {
		gap += v * safeGapStepSeconds
		v -= decel * safeGapStepSeconds
		if v < 0 {
			v = 0
		}
	}
	return gap
}

// Sail runs one tick of the acceleration controller, integrates speed and
// position, and debits energy. env is the environment sample at the ship's
// current position; criticalPoints are this tick's gap triples.
func (s *Ship) Sail(dtSeconds, freeFlowSpeedMPS float64, criticalPoints []CriticalPoint, env environment.Record) {
	if !s.Loaded || s.ReachedDestination {
		return
	}

	thrustN, resistanceN := s.totalThrustAndResistanceN(env)
	s.CurrentThrustN = thrustN
	s.CurrentResistanceN = resistanceN
	mass := s.TotalDynamicMassKg()
	aMax := 0.0
	if mass > 0 {
		aMax = (thrustN - resistanceN) / mass
	}

	mostRestrictive := aMax
	first := true
	for _, cp := range criticalPoints {
		a := s.accelerate(cp, freeFlowSpeedMPS, dtSeconds, aMax)
		if first || a < mostRestrictive {
			mostRestrictive = a
			first = false
		}
	}

	aSmooth := 0.8*mostRestrictive + 0.2*s.PrevAccelMPS2
	if aSmooth > aMax {
		aSmooth = aMax
	}

	maxJerkStep := math.Abs(s.PrevAccelMPS2) + s.jerkCap()*dtSeconds
	aFinal := aSmooth
	if math.Abs(aSmooth) > maxJerkStep {
		jerk := (aSmooth - s.PrevAccelMPS2) / dtSeconds
		aFinal = math.Copysign(maxJerkStep, aSmooth)
		s.Sink.SuddenAcceleration(shared.SuddenAccelerationEvent{ShipID: s.UserID, JerkMS3: jerk})
	}

	if s.SpeedMPS < 1e-6 && aFinal < 0 {
		aFinal = 0
	}

	if s.OutOfEnergy && s.StopIfNoEnergy {
		aFinal = 0
		if s.SpeedMPS < safeGapStopSpeedMPS {
			s.Sink.SlowSpeedOrStopped(shared.SlowSpeedEvent{ShipID: s.UserID, Speed: s.SpeedMPS, Reason: "out of energy"})
		}
	} else if s.SpeedMPS < safeGapStopSpeedMPS && thrustN > 0 {
		s.Sink.SlowSpeedOrStopped(shared.SlowSpeedEvent{ShipID: s.UserID, Speed: s.SpeedMPS, Reason: "stationary under thrust"})
	}

	vNext := s.SpeedMPS + aFinal*dtSeconds
	if vNext < 0 {
		vNext = 0
	}
	if vNext > s.MaxSpeedMPS && s.MaxSpeedMPS > 0 {
		vNext = s.MaxSpeedMPS
	}
	aFinal = (vNext - s.SpeedMPS) / dtSeconds

	s.PreviousSpeedMPS = s.SpeedMPS
	s.PrevAccelMPS2 = s.AccelMPS2
	s.SpeedMPS = vNext
	s.AccelMPS2 = aFinal

	s.advancePath(vNext*dtSeconds, dtSeconds)
	s.debitEnergy(dtSeconds)
}

func (s *Ship) jerkCap() float64 {
	if s.MaxJerkMPS3 > 0 {
		return s.MaxJerkMPS3
	}
	return jerkMaxMPS3
}

// advancePath moves the ship stepDistanceM along its path per the turning
// radius and rate-of-turn rules of §4.L, rotating heading before
// translating.
func (s *Ship) advancePath(stepDistanceM, dtSeconds float64) {
	if s.Path.LastReachedVertex >= len(s.Path.Points)-1 {
		s.declareReached()
		return
	}

	target := s.Path.Points[s.Path.LastReachedVertex+1]
	remaining := geo.Distance(s.Position, target)

	r := s.turningRadiusM()
	rotMax := 0.0
	if r > 0 {
		rotMax = s.SpeedMPS / r / 60.0
	}

	targetHeading := geo.Bearing(s.Position, target)
	headingDelta := angleDeltaDeg(s.HeadingDeg, targetHeading)

	thresholdM := 0.0
	if r > 0 {
		thresholdM = r * math.Tan(math.Abs(deg2rad(headingDelta))/2)
	}

	if remaining <= thresholdM && s.Path.LastReachedVertex+1 < len(s.Path.Points)-1 {
		s.Path.LastReachedVertex++
		target = s.Path.Points[s.Path.LastReachedVertex+1]
		targetHeading = geo.Bearing(s.Position, target)
		headingDelta = angleDeltaDeg(s.HeadingDeg, targetHeading)
	}

	rotateStep := math.Copysign(math.Min(math.Abs(headingDelta), rotMax*dtSeconds), headingDelta)
	s.HeadingDeg = normalizeHeading(s.HeadingDeg + rotateStep)

	lateral := perpendicularOffsetM(s.Position, s.Path.Lines, s.Path.LastReachedVertex)
	if math.Abs(headingDelta) > headingDeviationWarnDeg || lateral > lateralDeviationWarnM {
		s.Sink.PathDeviation(shared.PathDeviationEvent{
			ShipID:            s.UserID,
			LateralDistanceM:  lateral,
			HeadingDeviationD: math.Abs(headingDelta),
		})
	}

	finalTarget := s.Path.Points[len(s.Path.Points)-1]
	distanceToFinal := geo.Distance(s.Position, finalTarget)
	if distanceToFinal <= stepDistanceM {
		s.Position = finalTarget
		s.declareReached()
		return
	}

	s.Position = geo.PointAtDistanceAndHeading(s.Position, stepDistanceM, s.HeadingDeg)
	s.Path.TotalTraveledM += stepDistanceM
}

func (s *Ship) turningRadiusM() float64 {
	angle := s.RudderMaxAngleDeg
	if angle <= 0 || angle >= 90 {
		return 0
	}
	if s.Hull.WaterlineLengthM <= 0 {
		return 0
	}
	return s.Hull.WaterlineLengthM / math.Tan(deg2rad(angle))
}

func (s *Ship) declareReached() {
	s.ReachedDestination = true
	s.SpeedMPS = 0
	s.AccelMPS2 = 0
	s.Sink.ReachedDestination(s.Snapshot())
}

func deg2rad(d float64) float64 { return d * math.Pi / 180.0 }

func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// angleDeltaDeg is the signed smallest angle from a to b, in (-180,180].
func angleDeltaDeg(a, b float64) float64 {
	d := math.Mod(b-a+540, 360) - 180
	return d
}

// perpendicularOffsetM estimates the ship's lateral deviation from the
// current path segment, using planar great-circle degree-space distance as
// an approximation.
func perpendicularOffsetM(p geo.GPoint, lines []geo.GLine, segIdx int) float64 {
	if segIdx < 0 || segIdx >= len(lines) {
		return 0
	}
	seg := lines[segIdx]
	return distanceToSegmentM(p, seg.Start, seg.End)
}

func distanceToSegmentM(p, a, b geo.GPoint) float64 {
	abLen := geo.Distance(a, b)
	if abLen == 0 {
		return geo.Distance(p, a)
	}
	bearAB := deg2rad(geo.Bearing(a, b))
	bearAP := deg2rad(geo.Bearing(a, p))
	distAP := geo.Distance(a, p)
	crossTrack := math.Asin(math.Sin(distAP/earthRadiusApproxM)*math.Sin(bearAP-bearAB)) * earthRadiusApproxM
	return math.Abs(crossTrack)
}

const earthRadiusApproxM = 6371000.0
