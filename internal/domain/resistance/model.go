package resistance

// Breakdown is the decomposed calm-water resistance of 4.F, in Newtons,
// plus the hull-propeller interaction coefficients the propulsion package
// needs.
type Breakdown struct {
	FrictionN     float64 // R_F
	AppendageN    float64 // R_APP
	WaveN         float64 // R_W
	BulbousBowN   float64 // R_B
	TransomN      float64 // R_TR
	CorrelationN  float64 // R_A
	AirN          float64 // R_AIR

	HullEfficiency             float64 // (1-t)/(1-w)
	PropellerRotationEfficiency float64 // relative rotative efficiency
	ThrustDeductionFraction    float64 // t
	WakeFraction               float64 // w
	SpeedOfAdvanceMPS          float64 // V_A = V*(1-w)
}

// TotalN sums every calm-water term.
func (b Breakdown) TotalN() float64 {
	return b.FrictionN + b.AppendageN + b.WaveN + b.BulbousBowN + b.TransomN + b.CorrelationN + b.AirN
}

// DynamicBreakdown is the Lang-Mao dynamic (seaway) resistance of 4.G, in
// Newtons.
type DynamicBreakdown struct {
	WaveReflectionN float64
	WaveMotionN     float64
	WindN           float64
}

// TotalN sums every dynamic term.
func (d DynamicBreakdown) TotalN() float64 {
	return d.WaveReflectionN + d.WaveMotionN + d.WindN
}

// Environment is the subset of an environment.Record the resistance models
// need, kept local to this package to avoid a domain-layer dependency
// cycle (environment does not need to know about resistance).
type Environment struct {
	WaterDepthM          float64
	SalinityPPT          float64
	TemperatureC         float64
	WaveHeightM          float64
	WaveLengthM          float64
	WaveAngularFreqRadS  float64
	WaveDirectionDeg     float64
	WindSpeedMPS         float64
	WindDirectionDeg     float64
}

// State is the ship kinematic state the resistance models are evaluated
// at: speed and heading.
type State struct {
	SpeedMPS   float64
	HeadingDeg float64
}

// ResistanceModel is the closed strategy interface for calm-water
// resistance; exactly two implementations exist (HoltropMennen,
// LangMaoDynamic is layered as a decorator around one, see langmao.go).
type ResistanceModel interface {
	CalmWater(hull HullForm, env Environment, st State) (Breakdown, []error)
}

// DynamicModel adds the seaway (wave + wind) resistance contribution on
// top of a calm-water ResistanceModel.
type DynamicModel interface {
	Dynamic(hull HullForm, env Environment, st State) DynamicBreakdown
}
