package config

import "time"

// DaemonConfig holds the simulator control-surface service configuration:
// the gRPC address a control client uses to pause/resume/add-ship/set-end-time
// a running simulation, plus the PID-lock that prevents two runs from
// writing to the same output files.
type DaemonConfig struct {
	// Address is the gRPC listen address (host:port) for the control
	// surface of §... (Pause/Resume/AddShip/SetEndTime/GetShipState).
	Address string `mapstructure:"address" validate:"required"`

	// PID file location, guards against a second instance targeting the
	// same output paths.
	PIDFile string `mapstructure:"pid_file"`

	// Graceful shutdown timeout once a stop signal is observed.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
