package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults (sqlite run ledger; no server to default host/port for)
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "shipnetsim.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Simulation defaults
	if cfg.Simulation.TimeStepSeconds == 0 {
		cfg.Simulation.TimeStepSeconds = 1.0
	}
	if cfg.Simulation.OutputEveryNTicks == 0 {
		cfg.Simulation.OutputEveryNTicks = 1
	}
	if cfg.Simulation.WallClockTimeout == 0 {
		cfg.Simulation.WallClockTimeout = 1 * time.Hour
	}

	// Output defaults
	if cfg.Output.TrajectoryCSVPath == "" {
		cfg.Output.TrajectoryCSVPath = "trajectory.csv"
	}
	if cfg.Output.SummaryTXTPath == "" {
		cfg.Output.SummaryTXTPath = "summary.txt"
	}
	if cfg.Output.EventsJSONPath == "" {
		cfg.Output.EventsJSONPath = "events.jsonl"
	}

	// Daemon defaults
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = "localhost:50052"
	}
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/shipnetsim-sim.pid"
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 30 * time.Second
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28 // days
	}
}
