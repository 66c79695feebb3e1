package config

import "time"

// SimulationConfig holds the tick-loop parameters of §4.M.
type SimulationConfig struct {
	// TimeStepSeconds is Δt; defaults to 1s.
	TimeStepSeconds float64 `mapstructure:"time_step_seconds" validate:"omitempty,gt=0"`

	// EndTimeSeconds is the simulated end time; 0 means run until every
	// ship reaches its destination.
	EndTimeSeconds float64 `mapstructure:"end_time_seconds" validate:"omitempty,gte=0"`

	// OutputEveryNTicks controls trajectory row emission frequency.
	OutputEveryNTicks int `mapstructure:"output_every_n_ticks" validate:"omitempty,min=1"`

	// WallClockTimeout bounds how long a run may take in real time before
	// the control surface is expected to cancel it.
	WallClockTimeout time.Duration `mapstructure:"wall_clock_timeout"`
}

// NetworkConfig points at the water network description and/or shapefile
// inputs of §6.
type NetworkConfig struct {
	// DescriptionFilePath is the text-format [WATERBODY]/[LAND] file.
	DescriptionFilePath string `mapstructure:"description_file_path"`

	// ShapefilePath names a GDAL-readable polygon layer. No command reads
	// it, and the shapefile adapter only returns ErrUnsupported.
	ShapefilePath string `mapstructure:"shapefile_path"`
}

// OutputConfig names the sink destinations of §6.
type OutputConfig struct {
	TrajectoryCSVPath string `mapstructure:"trajectory_csv_path"`
	SummaryTXTPath    string `mapstructure:"summary_txt_path"`
	EventsJSONPath    string `mapstructure:"events_json_path"`
}
