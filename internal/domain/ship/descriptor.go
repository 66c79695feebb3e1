package ship

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/propulsion"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/resistance"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// Descriptor mirrors the front-end's associative ship descriptor (§6): a
// flat set of typed fields, validated as a whole so every missing/invalid
// field is reported at once rather than failing on the first.
type Descriptor struct {
	ID string `validate:"required"`

	WaterlineLengthM              float64 `validate:"gte=0"`
	LengthBetweenPerpendicularsM  float64 `validate:"gte=0"`
	BeamM                         float64 `validate:"required,gt=0"`
	DraftAtForwardM               float64 `validate:"gte=0"`
	DraftAtAftM                   float64 `validate:"gte=0"`
	MeanDraftM                    float64 `validate:"gte=0"`
	VolumetricDisplacementM3      float64 `validate:"gte=0"`
	WettedHullSurfaceM2           float64 `validate:"gte=0"`
	BlockCoef                     float64 `validate:"required,gt=0,lte=1"`
	PrismaticCoef                 float64 `validate:"gte=0,lte=1"`
	MidshipSectionCoef            float64 `validate:"gte=0,lte=1"`
	WaterplaneAreaCoef            float64 `validate:"gte=0,lte=1"`

	LightshipWeightKg float64 `validate:"gte=0"`
	CargoWeightKg     float64 `validate:"gte=0"`

	PropellerCount            int     `validate:"required,gte=1"`
	EnginesCountPerPropeller  int     `validate:"required,gte=1"`
	PropellerDiameterM        float64 `validate:"required,gt=0"`
	PropellerPitchRatio       float64 `validate:"required,gte=0.5,lte=1.4"`
	PropellerExpandedAreaRatio float64 `validate:"required,gte=0.3,lte=1.05"`
	PropellerBladesCount      int     `validate:"required,gte=2,lte=7"`

	EngineMCRPowerKW  float64 `validate:"required,gt=0"`
	MaxSpeedMPS       float64 `validate:"required,gt=0"`

	FuelType                   string  `validate:"required"`
	TankSizeLiters             float64 `validate:"required,gt=0"`
	TankInitialFillPercent     float64 `validate:"gte=0,lte=100"`
	TankDepthOfDischargeFrac   float64 `validate:"gte=0,lte=1"`

	MaxRudderAngleDeg float64 `validate:"required,gt=0,lt=90"`
	StopIfNoEnergy    bool
}

// ParseDescriptor converts the raw string map into a typed Descriptor,
// applying numeric/bool conversions where a key is present, then validates
// the whole struct and aggregates every offending field into one
// ConfigurationError.
func ParseDescriptor(raw map[string]string) (Descriptor, error) {
	d := Descriptor{
		MeanDraftM:                 0,
		TankInitialFillPercent:     100,
		TankDepthOfDischargeFrac:   0.1,
	}

	d.ID = raw["ID"]
	d.WaterlineLengthM = parseFloat(raw["WaterlineLength"])
	d.LengthBetweenPerpendicularsM = parseFloat(raw["LengthBetweenPerpendiculars"])
	d.BeamM = parseFloat(raw["Beam"])
	d.DraftAtForwardM = parseFloat(raw["DraftAtForward"])
	d.DraftAtAftM = parseFloat(raw["DraftAtAft"])
	if v, ok := raw["MeanDraft"]; ok {
		d.MeanDraftM = parseFloat(v)
	}
	d.VolumetricDisplacementM3 = parseFloat(raw["VolumetricDisplacement"])
	d.WettedHullSurfaceM2 = parseFloat(raw["WettedHullSurface"])
	d.BlockCoef = parseFloat(raw["BlockCoef"])
	d.PrismaticCoef = parseFloat(raw["PrismaticCoef"])
	d.MidshipSectionCoef = parseFloat(raw["MidshipSectionCoef"])
	d.WaterplaneAreaCoef = parseFloat(raw["WaterplaneAreaCoef"])

	d.LightshipWeightKg = parseFloat(raw["LightshipWeight"])
	d.CargoWeightKg = parseFloat(raw["CargoWeight"])

	d.PropellerCount = parseInt(raw["PropellerCount"])
	d.EnginesCountPerPropeller = parseInt(raw["EnginesCountPerPropeller"])
	d.PropellerDiameterM = parseFloat(raw["PropellerDiameter"])
	d.PropellerPitchRatio = parseFloat(raw["PropellerPitch"])
	d.PropellerExpandedAreaRatio = parseFloat(raw["PropellerExpandedAreaRatio"])
	d.PropellerBladesCount = parseInt(raw["PropellerBladesCount"])

	d.EngineMCRPowerKW = parseFloat(raw["EngineMCRPower"])
	d.MaxSpeedMPS = parseFloat(raw["MaxSpeed"])

	d.FuelType = raw["FuelType"]
	d.TankSizeLiters = parseFloat(raw["TankSize"])
	if v, ok := raw["TankInitialCapacityPercentage"]; ok {
		d.TankInitialFillPercent = parseFloat(v)
	}
	if v, ok := raw["TankDepthOfDischage"]; ok {
		d.TankDepthOfDischargeFrac = parseFloat(v)
	}

	d.MaxRudderAngleDeg = parseFloat(raw["MaxRudderAngle"])
	d.StopIfNoEnergy = strings.EqualFold(raw["StopIfNoEnergy"], "true")

	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		} else {
			fields = append(fields, err.Error())
		}
		return Descriptor{}, shared.NewConfigurationError(fields...)
	}

	return d, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// Build constructs a fully-wired Ship (hull, one gearbox per propeller with
// EnginesCountPerPropeller identical engines, one tank per engine)
// from a validated descriptor. engineCurve is shared across all engines;
// callers loading curves from EngineTierIIPropertiesPoints pass them here.
func Build(d Descriptor, engineCurve []propulsion.Properties, startTime time.Time) (*Ship, error) {
	hull, _, err := resistance.NewHullForm(resistance.HullForm{
		WaterlineLengthM:             d.WaterlineLengthM,
		LengthBetweenPerpendicularsM: d.LengthBetweenPerpendicularsM,
		BeamM:                        d.BeamM,
		DraftForwardM:                d.DraftAtForwardM,
		DraftAftM:                    d.DraftAtAftM,
		MeanDraftM:                   d.MeanDraftM,
		VolumetricDisplacementM3:     d.VolumetricDisplacementM3,
		WettedHullSurfaceM2:          d.WettedHullSurfaceM2,
		BlockCoef:                    d.BlockCoef,
		PrismaticCoef:                d.PrismaticCoef,
		MidshipSectionCoef:           d.MidshipSectionCoef,
		WaterplaneAreaCoef:           d.WaterplaneAreaCoef,
	})
	if err != nil {
		return nil, err
	}

	s := New(d.ID, hull)
	s.LightshipWeightKg = d.LightshipWeightKg
	s.CargoWeightKg = d.CargoWeightKg
	s.MaxSpeedMPS = d.MaxSpeedMPS
	s.RudderMaxAngleDeg = d.MaxRudderAngleDeg
	s.StopIfNoEnergy = d.StopIfNoEnergy
	s.StartTime = startTime

	fuelType := energy.ParseFuelType(d.FuelType)
	operationalPower := [4]float64{
		d.EngineMCRPowerKW * 0.25,
		d.EngineMCRPowerKW * 0.5,
		d.EngineMCRPowerKW * 0.75,
		d.EngineMCRPowerKW,
	}

	for i := 0; i < d.PropellerCount; i++ {
		engines := make([]*propulsion.Engine, 0, d.EnginesCountPerPropeller)
		for j := 0; j < d.EnginesCountPerPropeller; j++ {
			tank := energy.NewTank(fuelType, d.TankSizeLiters, d.TankInitialFillPercent, d.TankDepthOfDischargeFrac)
			s.EnergySources = append(s.EnergySources, tank)

			id := d.ID + "-prop" + strconv.Itoa(i) + "-eng" + strconv.Itoa(j)
			e, err := propulsion.NewEngine(id, engineCurve, nil, operationalPower, d.MaxSpeedMPS, tank)
			if err != nil {
				return nil, err
			}
			engines = append(engines, e)
		}

		gearbox, err := propulsion.NewGearbox(engines, 1.0, 0)
		if err != nil {
			return nil, err
		}

		prop, err := propulsion.NewPropeller(d.PropellerDiameterM, d.PropellerPitchRatio,
			d.PropellerExpandedAreaRatio, d.PropellerBladesCount, 0.2, 0.15, gearbox)
		if err != nil {
			return nil, err
		}
		s.Propellers = append(s.Propellers, prop)
	}

	return s, nil
}
