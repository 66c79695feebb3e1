package resistance

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/hydrology"
)

// LangMaoDynamic is the seaway resistance strategy of 4.G: added wave
// (reflection + motion) resistance plus wind resistance, layered on top of
// a calm-water ResistanceModel.
type LangMaoDynamic struct {
	CalmWaterModel ResistanceModel
}

// NewLangMaoDynamic defaults to HoltropMennen for the calm-water term,
// matching the teacher's preference for constructors that wire a sane
// default collaborator rather than requiring the caller to supply one.
func NewLangMaoDynamic() LangMaoDynamic {
	return LangMaoDynamic{CalmWaterModel: HoltropMennen{}}
}

// CalmWater delegates to the wrapped calm-water model.
func (m LangMaoDynamic) CalmWater(hull HullForm, env Environment, st State) (Breakdown, []error) {
	model := m.CalmWaterModel
	if model == nil {
		model = HoltropMennen{}
	}
	return model.CalmWater(hull, env, st)
}

// encounterAngleRad returns the wave direction relative to the ship
// heading, normalized to [0, pi].
func encounterAngleRad(waveDirDeg, headingDeg float64) float64 {
	delta := math.Mod(waveDirDeg-headingDeg, 360)
	if delta < 0 {
		delta += 360
	}
	if delta > 180 {
		delta = 360 - delta
	}
	return delta * math.Pi / 180
}

// Dynamic computes the wave reflection, wave motion and wind resistance
// contributions.
func (m LangMaoDynamic) Dynamic(hull HullForm, env Environment, st State) DynamicBreakdown {
	return DynamicBreakdown{
		WaveReflectionN: waveReflectionResistance(hull, env, st),
		WaveMotionN:     waveMotionResistance(hull, env, st),
		WindN:           windResistance(hull, env, st),
	}
}

func waveReflectionResistance(hull HullForm, env Environment, st State) float64 {
	if env.WaveHeightM <= 0 || st.SpeedMPS <= 0 {
		return 0
	}
	rho := hydrology.WaterDensity(env.SalinityPPT, env.TemperatureC)
	a := env.WaveHeightM / 1.5
	e := hull.HalfAngleOfEntranceDeg * math.Pi / 180
	bf := 2.25 * math.Pow(math.Sin(e), 2)

	encounter := encounterAngleRad(env.WaveDirectionDeg, st.HeadingDeg)
	k := 0.0
	if env.WaveLengthM > 0 {
		k = 2 * math.Pi / env.WaveLengthM
	}
	alphaT := 1.0 / (1.0 + math.Exp(-k*hull.MeanDraftM))

	fn := hydrology.FroudeNumber(st.SpeedMPS, hull.WaterlineLengthM)
	lambdaOverL := 1.0
	if hull.WaterlineLengthM > 0 {
		lambdaOverL = env.WaveLengthM / hull.WaterlineLengthM
	}
	cb := hull.BlockCoef
	if cb <= 0 {
		cb = 0.65
	}

	advance := st.SpeedMPS * math.Cos(encounter)

	return 0.5 * rho * hydrology.GravityMPS2 * a * a * hull.BeamM * bf * alphaT * advance *
		(0.19 / cb) * math.Pow(math.Max(lambdaOverL, 1e-6), fn-1.11)
}

func waveMotionResistance(hull HullForm, env Environment, st State) float64 {
	if env.WaveHeightM <= 0 {
		return 0
	}
	kyy := 0.25 * hull.WaterlineLengthM
	cb := hull.BlockCoef
	if cb <= 0 {
		cb = 0.65
	}

	encounter := encounterAngleRad(env.WaveDirectionDeg, st.HeadingDeg)
	omegaE := env.WaveAngularFreqRadS * (1 + (env.WaveAngularFreqRadS*st.SpeedMPS/hydrology.GravityMPS2)*math.Cos(encounter))
	if hull.WaterlineLengthM <= 0 {
		return 0
	}
	omegaDelta := omegaE * math.Sqrt(hull.WaterlineLengthM/hydrology.GravityMPS2)

	a1 := 60.3 * math.Pow(cb, 1.34)
	a2 := math.Max(0, math.Min(1, -0.87*(kyy/hull.WaterlineLengthM)+1.43))
	b1 := 11.0
	if omegaDelta < 1.0 {
		b1 = 11.0
	} else if omegaDelta < 1.7 {
		b1 = -8.5
	} else {
		b1 = 1.17
	}
	d1 := 14.0
	if omegaDelta >= 1.0 {
		d1 = -566 * math.Pow(hull.WaterlineLengthM/hull.BeamM, -2.66)
	}

	waveAmp := env.WaveHeightM / 2
	rawExp := b1 * math.Pow(omegaDelta, d1)
	return a1 * a2 * waveAmp * waveAmp * hull.BeamM * hull.BeamM / hull.WaterlineLengthM *
		hydrology.WaterDensity(env.SalinityPPT, env.TemperatureC) * hydrology.GravityMPS2 *
		math.Min(math.Max(rawExp, 0), 1e6) * 1e-3
}

func windResistance(hull HullForm, env Environment, st State) float64 {
	const airDensity = 1.225
	const dragCoef = 0.7

	windDirRelative := encounterAngleRad(env.WindDirectionDeg, st.HeadingDeg)
	vRel := env.WindSpeedMPS * math.Cos(windDirRelative)
	return 0.5 * dragCoef * vRel * vRel * hull.ProjectedFrontalAreaM2
}
