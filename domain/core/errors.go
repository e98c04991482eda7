package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions. Every pipeline failure wraps
// exactly one of these, so callers can attribute a failure to its stage with
// errors.Is and map it to an exit status.
var (
	// ErrDataSource covers unreadable inputs and missing amount columns.
	ErrDataSource = errors.New("data source unreadable")

	// ErrInsufficientData means no non-zero amounts survived filtering;
	// first-digit statistics are undefined for an empty series.
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrRender covers unwritable output locations and artifact write failures.
	ErrRender = errors.New("report rendering failed")
)

// Error constructors with context
func NewDataSourceError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataSource, source, err)
}

func NewMissingColumnError(source string, columns []string) error {
	return fmt.Errorf("%w: %s has none of the amount columns %v", ErrDataSource, source, columns)
}

func NewInsufficientDataError(rowsScanned int) error {
	return fmt.Errorf("%w: %d rows scanned, no non-zero amounts", ErrInsufficientData, rowsScanned)
}

func NewRenderError(artifact string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, artifact, err)
}

// Error checking helpers
func IsDataSourceError(err error) bool {
	return errors.Is(err, ErrDataSource)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsRenderError(err error) bool {
	return errors.Is(err, ErrRender)
}
