package datagrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("datagrid: invalid configuration")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("datagrid: value rejected")

	// ErrNoEditSession is returned by Submit when no edit surface is open.
	ErrNoEditSession = errors.New("datagrid: no edit session")
)

// ConfigError reports malformed setup. It is fatal at configuration time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("datagrid: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidConfig) match.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a submitted value that was refused. The edit session
// stays open and Message is shown inline by the edit surface.
type ValidationError struct {
	Row, Col int
	Value    string
	Message  string
	Err      error // validator or parse error, if any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("datagrid: cell (%d,%d) rejected %q: %s", e.Row, e.Col, e.Value, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
