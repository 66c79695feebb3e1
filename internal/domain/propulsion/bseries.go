package propulsion

import "math"

const reynoldsCorrectionThreshold = 2.0e6

func power(base float64, exp int) float64 {
	switch exp {
	case 0:
		return 1
	case 1:
		return base
	default:
		return math.Pow(base, float64(exp))
	}
}

// evaluate computes the B-series polynomial value at the given operating
// point, adding the Reynolds correction term only when Rn exceeds the
// threshold (applies identically to both KT and KQ since it models
// blade-friction scale effects common to both coefficients).
func (cs coefficientSet) evaluate(j, pd, areaRatio float64, z int, rn float64) float64 {
	if j == 0 {
		j = 0.0001
	}

	result := 0.0
	for i := range cs.c {
		result += cs.c[i] * power(j, cs.s[i]) * power(pd, cs.t[i]) *
			power(areaRatio, cs.u[i]) * power(float64(z), cs.v[i])
	}

	if rn > reynoldsCorrectionThreshold {
		result += reynoldsCorrection(j, pd, areaRatio, float64(z), rn)
	}
	return result
}

// reynoldsCorrection is the shared blade-friction scale-effect addend
// applied to both KT and KQ above the Reynolds threshold.
func reynoldsCorrection(j, pd, areaRatio, z, rn float64) float64 {
	logR := math.Log(rn - 0.301)
	logR2 := logR * logR
	pd2 := pd * pd
	pd6 := power(pd, 6)
	j2 := j * j

	return 0.000353485 -
		0.00333758*areaRatio*j -
		0.00478125*areaRatio*pd*j +
		0.000257792*logR2*areaRatio*j2 +
		0.0000643192*logR*pd6*j2 -
		0.0000110636*logR2*pd6*j2 -
		0.0000276305*logR2*z*areaRatio*j2 +
		0.0000954*logR*z*areaRatio*pd*j +
		0.0000032049*logR*z*z*areaRatio*pd*pd*pd*j -
		0.000591412 +
		0.00696898*pd -
		0.0000666654*z*pd2 +
		0.0160818*areaRatio*areaRatio -
		0.000938091*logR*pd -
		0.00059593*logR*pd2 +
		0.0000782099*logR2*pd2 +
		0.0000052199*logR*z*areaRatio*j2 -
		0.00000088528*logR2*z*areaRatio*j +
		0.0000230171*logR*z*pd6 -
		0.00000184341*logR2*z*pd6 -
		0.00400252*logR*areaRatio*areaRatio +
		0.000220915*logR2*areaRatio*areaRatio
}

// KT evaluates the thrust coefficient polynomial.
func KT(j, pd, areaRatio float64, z int, rn float64) float64 {
	return ktCoefficients.evaluate(j, pd, areaRatio, z, rn)
}

// KQ evaluates the torque coefficient polynomial.
func KQ(j, pd, areaRatio float64, z int, rn float64) float64 {
	return kqCoefficients.evaluate(j, pd, areaRatio, z, rn)
}

// checkBSeriesApplicability rejects Z, P/D, A_E/A_0 combinations outside
// the B-series regression's validated range.
func checkBSeriesApplicability(pd, areaRatio float64, z int) bool {
	if z < 2 || z > 7 {
		return false
	}
	if pd < 0.5 || pd > 1.4 {
		return false
	}
	if areaRatio < 0.3 || areaRatio > 1.05 {
		return false
	}
	return true
}
