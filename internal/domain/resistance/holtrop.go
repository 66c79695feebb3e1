package resistance

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/hydrology"
)

// HoltropMennen is the calm-water resistance strategy of 4.F: the classic
// Holtrop & Mennen (1982) regression, decomposed into its seven additive
// terms plus the hull-propeller interaction coefficients.
type HoltropMennen struct{}

// applicabilityWarning is returned (never as a fatal error) when the hull
// falls outside Holtrop & Mennen's validated regression range; the model
// still computes a result.
type applicabilityWarning struct{ msg string }

func (w applicabilityWarning) Error() string { return w.msg }

// CalmWater computes the full Holtrop & Mennen decomposition. Validity
// checks (F_n<=0.45, C_P in [0.55,0.85], L/B in [3.9,9.5]) produce warnings
// in the returned slice but never block the computation.
func (HoltropMennen) CalmWater(hull HullForm, env Environment, st State) (Breakdown, []error) {
	var warnings []error

	rho := hydrology.WaterDensity(env.SalinityPPT, env.TemperatureC)
	fn := hydrology.FroudeNumber(st.SpeedMPS, hull.WaterlineLengthM)
	rn := hydrology.ReynoldsNumber(st.SpeedMPS, hull.WaterlineLengthM, 0)

	if fn > 0.45 {
		warnings = append(warnings, applicabilityWarning{"holtrop: Froude number exceeds validated range (F_n > 0.45)"})
	}
	cp := hull.PrismaticCoef
	if cp < 0.55 || cp > 0.85 {
		warnings = append(warnings, applicabilityWarning{"holtrop: prismatic coefficient outside validated range [0.55, 0.85]"})
	}
	lb := hull.LOverB()
	if lb < 3.9 || lb > 9.5 {
		warnings = append(warnings, applicabilityWarning{"holtrop: L/B outside validated range [3.9, 9.5]"})
	}

	formFactor := 1 + 0.015*hull.SternShapeCoef/100 + computeK1(hull)

	rF := frictionResistance(hull, rho, st.SpeedMPS, rn, formFactor)
	rApp := appendageResistance(hull, rho, st.SpeedMPS)
	rW := waveResistance(hull, rho, st.SpeedMPS, fn)
	rB := bulbousBowResistance(hull, rho, st.SpeedMPS, fn)
	rTR := transomResistance(hull, rho, st.SpeedMPS, fn)
	rA := correlationResistance(hull, rho, st.SpeedMPS)
	rAir := airResistance(hull, st.SpeedMPS)

	wakeFraction := estimateWakeFraction(hull)
	thrustDeduction := estimateThrustDeduction(hull)

	b := Breakdown{
		FrictionN:    rF,
		AppendageN:   rApp,
		WaveN:        rW,
		BulbousBowN:  rB,
		TransomN:     rTR,
		CorrelationN: rA,
		AirN:         rAir,

		HullEfficiency:              (1 - thrustDeduction) / (1 - wakeFraction),
		PropellerRotationEfficiency: 0.98 + 0.05*(hull.PrismaticCoef-0.6),
		ThrustDeductionFraction:     thrustDeduction,
		WakeFraction:                wakeFraction,
		SpeedOfAdvanceMPS:           st.SpeedMPS * (1 - wakeFraction),
	}
	return b, warnings
}

func computeK1(hull HullForm) float64 {
	cp := hull.PrismaticCoef
	lr := hull.WaterlineLengthM * (1 - cp + 0.06*cp*hull.HalfAngleOfEntranceDeg/100)
	if lr <= 0 {
		lr = hull.WaterlineLengthM * 0.3
	}
	c14 := 1 + 0.011*hull.SternShapeCoef
	k1 := 0.93 + 0.487118*c14*math.Pow(hull.BeamM/hull.WaterlineLengthM, 1.06806)*
		math.Pow(hull.MeanDraftM/hull.WaterlineLengthM, 0.46106)*
		math.Pow(hull.WaterlineLengthM/lr, 0.121563)*
		math.Pow(math.Pow(hull.WaterlineLengthM, 3)/hull.VolumetricDisplacementM3, 0.36486)*
		math.Pow(1-cp, -0.604247)
	return k1 - 1
}

func frictionResistance(hull HullForm, rho, speed, rn, formFactor float64) float64 {
	if rn <= 0 {
		return 0
	}
	cf := 0.075 / math.Pow(math.Log10(rn)-2, 2)
	return 0.5 * rho * speed * speed * hull.WettedHullSurfaceM2 * cf * formFactor
}

func appendageResistance(hull HullForm, rho, speed float64) float64 {
	const onePlusK2 = 1.5 // representative 1+k2 for a generic appendage set
	cf := 0.0
	if speed > 0 {
		cf = 0.075
	}
	return 0.5 * rho * speed * speed * hull.AppendagesWettedSurfacesM2 * cf * onePlusK2
}

func waveResistance(hull HullForm, rho, speed, fn float64) float64 {
	if speed <= 0 {
		return 0
	}
	cp := hull.PrismaticCoef
	lwl := hull.WaterlineLengthM
	disp := hull.VolumetricDisplacementM3

	c7 := hull.BeamM / lwl
	if c7 > 0.11 {
		c7 = 0.229577 * math.Pow(hull.BeamM/lwl, 0.33333)
	}

	m1 := 0.0140407*(lwl/hull.MeanDraftM) - 1.75254*math.Pow(disp, 1.0/3)/lwl -
		4.79323*(hull.BeamM/lwl) - computeC16(cp)

	d := -0.9
	m4 := 0.4 * math.Exp(-0.034/math.Max(fn, 1e-6))

	lambda := 1.446*cp - 0.03*(lwl/hull.BeamM)
	if cp > 0.8 {
		lambda = 1.446*0.8 - 0.03*(lwl/hull.BeamM)
	}

	expTerm := m1*math.Pow(fn, d) + m4*math.Cos(lambda/math.Pow(fn, 2))
	rwOverW := c7 * 1.0 * math.Exp(expTerm)

	weightN := disp * rho * hydrology.GravityMPS2
	return rwOverW * weightN * 1e-3 * math.Abs(fn)
}

func computeC16(cp float64) float64 {
	if cp < 0.8 {
		return 8.07981*cp - 13.8673*cp*cp + 6.984388*cp*cp*cp
	}
	return 1.73014 - 0.7067*cp
}

func bulbousBowResistance(hull HullForm, rho, speed, fn float64) float64 {
	if hull.BulbousBowAreaM2 <= 0 || speed <= 0 {
		return 0
	}
	fni := speed / math.Sqrt(hydrology.GravityMPS2*(hull.DraftForwardM-hull.BulbousBowHeightM-0.25*math.Sqrt(hull.BulbousBowAreaM2))+0.15*speed*speed)
	pb := 0.56 * math.Sqrt(hull.BulbousBowAreaM2) / (hull.DraftForwardM - 1.5*hull.BulbousBowHeightM)
	if math.IsNaN(fni) || math.IsInf(fni, 0) {
		return 0
	}
	term := math.Pow(fni, 3) / (1 + math.Pow(fni, 2))
	return 0.11 * math.Exp(-3*pb*pb) * term * math.Pow(hull.BulbousBowAreaM2, 1.5) * rho * hydrology.GravityMPS2 /
		(1 + fni*fni)
}

func transomResistance(hull HullForm, rho, speed, fn float64) float64 {
	if hull.TransomAreaM2 <= 0 || speed <= 0 {
		return 0
	}
	fnt := speed / math.Sqrt(2*hydrology.GravityMPS2*hull.TransomAreaM2/(hull.BeamM+hull.BeamM*hull.WaterplaneAreaCoef))
	cbTr := 0.2 * (1 - 0.2*fnt)
	if fnt >= 5 {
		cbTr = 0
	}
	return 0.5 * rho * speed * speed * hull.TransomAreaM2 * cbTr
}

func correlationResistance(hull HullForm, rho, speed float64) float64 {
	ca := 0.006*math.Pow(hull.WaterlineLengthM+100, -0.16) - 0.00205
	return 0.5 * rho * speed * speed * hull.WettedHullSurfaceM2 * ca
}

func airResistance(hull HullForm, speed float64) float64 {
	const airDensity = 1.225
	const dragCoef = 0.8
	return 0.5 * airDensity * dragCoef * hull.ProjectedFrontalAreaM2 * speed * speed
}

func estimateWakeFraction(hull HullForm) float64 {
	return 0.5*hull.BlockCoef - 0.05
}

func estimateThrustDeduction(hull HullForm) float64 {
	return 0.6*hull.BlockCoef - 0.1
}
