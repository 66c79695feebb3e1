// Package resistance implements the two calm-water/dynamic resistance
// strategies (Holtrop & Mennen, Lang-Mao) behind a single closed
// ResistanceModel interface.
package resistance

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// HullForm is the set of hull-geometry inputs shared by both resistance
// strategies. WaterlineLength is authoritative for every Holtrop & Mennen
// term; if only LengthBetweenPerpendiculars is supplied, WaterlineLength
// defaults to it and NewHullForm reports the fallback in its bool result.
type HullForm struct {
	WaterlineLengthM              float64
	LengthBetweenPerpendicularsM  float64
	BeamM                         float64
	DraftForwardM                 float64
	DraftAftM                     float64
	MeanDraftM                    float64

	VolumetricDisplacementM3 float64
	WettedHullSurfaceM2      float64

	BlockCoef          float64
	PrismaticCoef      float64
	MidshipSectionCoef float64
	WaterplaneAreaCoef float64

	HalfAngleOfEntranceDeg float64
	SternShapeCoef         float64 // C_stern: -25 pram, -10 V-shape, 0 normal, 10 U-shape

	BulbousBowAreaM2   float64
	BulbousBowHeightM  float64
	TransomAreaM2      float64
	AppendagesWettedSurfacesM2 float64

	ProjectedFrontalAreaM2 float64 // above-waterline area, for air resistance
	RudderMaxAngleDeg      float64
}

// NewHullForm validates and normalizes a hull descriptor. WaterlineLength
// is required unless LengthBetweenPerpendiculars is supplied, in which
// case WaterlineLength defaults to it and the bool result is true.
// ship.Build discards that result, so no DomainWarning is raised for it.
func NewHullForm(h HullForm) (HullForm, bool, error) {
	usedLBPFallback := false
	if h.WaterlineLengthM <= 0 {
		if h.LengthBetweenPerpendicularsM <= 0 {
			return HullForm{}, false, shared.NewConfigurationError("WaterlineLength")
		}
		h.WaterlineLengthM = h.LengthBetweenPerpendicularsM
		usedLBPFallback = true
	}
	if h.BeamM <= 0 {
		return HullForm{}, false, shared.NewConfigurationError("Beam")
	}
	if h.MeanDraftM <= 0 {
		if h.DraftForwardM > 0 && h.DraftAftM > 0 {
			h.MeanDraftM = (h.DraftForwardM + h.DraftAftM) / 2
		} else {
			return HullForm{}, false, shared.NewConfigurationError("MeanDraft")
		}
	}
	if h.BlockCoef <= 0 {
		return HullForm{}, false, shared.NewConfigurationError("BlockCoef")
	}
	if h.VolumetricDisplacementM3 <= 0 {
		h.VolumetricDisplacementM3 = h.BlockCoef * h.WaterlineLengthM * h.BeamM * h.MeanDraftM
	}
	if h.WettedHullSurfaceM2 <= 0 {
		h.WettedHullSurfaceM2 = estimateWettedSurface(h)
	}
	if h.PrismaticCoef <= 0 && h.MidshipSectionCoef > 0 {
		h.PrismaticCoef = h.BlockCoef / h.MidshipSectionCoef
	}
	if h.MidshipSectionCoef <= 0 && h.PrismaticCoef > 0 {
		h.MidshipSectionCoef = h.BlockCoef / h.PrismaticCoef
	}
	if h.WaterplaneAreaCoef <= 0 {
		h.WaterplaneAreaCoef = (1 + 2*h.BlockCoef) / 3
	}
	if h.HalfAngleOfEntranceDeg <= 0 {
		h.HalfAngleOfEntranceDeg = 30
	}
	return h, usedLBPFallback, nil
}

// estimateWettedSurface uses the Holtrop & Mennen regression for wetted
// hull surface when not supplied directly.
func estimateWettedSurface(h HullForm) float64 {
	cm := h.MidshipSectionCoef
	if cm <= 0 {
		cm = 0.98
	}
	return h.WaterlineLengthM * (2*h.MeanDraftM + h.BeamM) * math.Sqrt(cm) *
		(0.453 + 0.4425*h.BlockCoef - 0.2862*cm - 0.003467*(h.BeamM/h.MeanDraftM) + 0.3696*h.WaterplaneAreaCoef) +
		2.38*h.BulbousBowAreaM2/h.BlockCoef
}

// LOverB is the classic slenderness ratio used to validate Holtrop's
// applicability range.
func (h HullForm) LOverB() float64 {
	if h.BeamM == 0 {
		return 0
	}
	return h.WaterlineLengthM / h.BeamM
}
