package shared

import (
	"fmt"
	"strings"
)

// DomainError is the base error type for all domain errors.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ConfigurationError reports one or more missing/invalid ship or network
// descriptor fields. Fatal at construction; reported before any ticking.
type ConfigurationError struct {
	*DomainError
	Fields []string
}

// NewConfigurationError aggregates every offending field into one error
// instead of failing on the first one encountered.
func NewConfigurationError(fields ...string) *ConfigurationError {
	msg := fmt.Sprintf("configuration error: %s", strings.Join(fields, "; "))
	return &ConfigurationError{DomainError: &DomainError{Message: msg}, Fields: fields}
}

// GeometryError reports a non-geographic CRS, a degenerate polygon, or a
// waypoint outside the water region. Fatal at network/path construction.
type GeometryError struct {
	*DomainError
}

func NewGeometryError(message string) *GeometryError {
	return &GeometryError{DomainError: &DomainError{Message: message}}
}

// RouteErrorCode distinguishes the two routing failure modes named in the
// error taxonomy.
type RouteErrorCode int

const (
	RouteErrorNoPathFound RouteErrorCode = iota
	RouteErrorWaypointNotInWater
)

// RouteError reports routing failures. NoPathFound is surfaced to the
// caller with the ship left unloaded; WaypointNotInWater fails graph
// construction outright.
type RouteError struct {
	*DomainError
	Code RouteErrorCode
}

func NewRouteError(code RouteErrorCode, message string) *RouteError {
	return &RouteError{DomainError: &DomainError{Message: message}, Code: code}
}

// Is lets errors.Is match RouteErrors by code alone, so callers can test
// against the exported sentinels below regardless of message text.
func (e *RouteError) Is(target error) bool {
	other, ok := target.(*RouteError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// Sentinel RouteErrors usable with errors.Is.
var (
	ErrNoPathFound        = NewRouteError(RouteErrorNoPathFound, "no path found between waypoints")
	ErrWaypointNotInWater = NewRouteError(RouteErrorWaypointNotInWater, "must-traverse waypoint is not inside the water region")
)

// DomainWarning reports an out-of-range modeling assumption (Froude number
// out of the Holtrop validity band, B-series parameter outside the
// recommended envelope, ...). Never fatal to a run. Most warnings are routed
// through an EventSink; Gearbox.SetEngineRPM and
// Propeller.SolveOperatingPoint return one as their error value.
type DomainWarning struct {
	*DomainError
	Source string
}

func NewDomainWarning(source, message string) *DomainWarning {
	return &DomainWarning{DomainError: &DomainError{Message: message}, Source: source}
}

// EnergyUnderSuppliedError reports that an energy source could not deliver
// the requested kWh. Not fatal: the engine transitions to off and the ship
// becomes out-of-energy; the simulation continues.
type EnergyUnderSuppliedError struct {
	*DomainError
	RequestedKWh float64
	DeliveredKWh float64
}

func NewEnergyUnderSuppliedError(requestedKWh, deliveredKWh float64) *EnergyUnderSuppliedError {
	return &EnergyUnderSuppliedError{
		DomainError: &DomainError{Message: fmt.Sprintf(
			"energy under-supplied: requested %.4f kWh, delivered %.4f kWh", requestedKWh, deliveredKWh)},
		RequestedKWh: requestedKWh,
		DeliveredKWh: deliveredKWh,
	}
}

// NumericInvariantError reports a modeling mistake that must never occur in
// a correct model: non-positive torque coefficient, division by zero in an
// advance ratio, NaN propagation. This is the one class in the taxonomy
// that panics; Simulator.tickShip recovers it per-ship so one ship's modeling
// fault cannot abort the whole run.
type NumericInvariantError struct {
	*DomainError
}

func NewNumericInvariantError(message string) *NumericInvariantError {
	return &NumericInvariantError{DomainError: &DomainError{Message: message}}
}

// DynamicsWarning reports a jerk-limit violation, a sudden deceleration, or
// a ship stationary under thrust. Reported through event signals; never
// fatal.
type DynamicsWarning struct {
	*DomainError
}

func NewDynamicsWarning(message string) *DynamicsWarning {
	return &DynamicsWarning{DomainError: &DomainError{Message: message}}
}

// ValidationError reports a single bad field; used by value-object
// constructors throughout the domain layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
