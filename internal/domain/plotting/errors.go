package plotting

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrNilExperiment indicates a plot was requested without an
	// experiment.
	ErrNilExperiment = errors.New("experiment cannot be nil")
)

// ConfigurationError indicates an accessor was constructed with a missing
// required dependency. The accessor instance is unusable; callers must
// construct a new one.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("accessor requires a non-nil %s", e.Field)
}

// IsConfigurationError returns true if the error indicates an invalid
// accessor construction.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// UnknownOperationError indicates a requested plot kind is absent from the
// dispatch table. Valid lists every accepted kind to aid the caller.
type UnknownOperationError struct {
	Kind  Kind
	Valid []string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("plot of kind %q is not one of [%s]", e.Kind, strings.Join(e.Valid, ", "))
}

// IsUnknownOperation returns true if the error indicates an unknown plot
// kind.
func IsUnknownOperation(err error) bool {
	var opErr *UnknownOperationError
	return errors.As(err, &opErr)
}

// InvalidOptionsError indicates the options value does not match the
// requested plot kind.
type InvalidOptionsError struct {
	Kind    Kind
	Options any
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("options of type %T do not apply to plot kind %q", e.Options, e.Kind)
}

// IsInvalidOptions returns true if the error indicates mismatched plot
// options.
func IsInvalidOptions(err error) bool {
	var optErr *InvalidOptionsError
	return errors.As(err, &optErr)
}
