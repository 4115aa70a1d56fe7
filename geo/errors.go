package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is matched by every *CoordinateError.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrDegenerateDistance is returned when an angle is requested for a target
// with no horizontal separation from the observer.
var ErrDegenerateDistance = errors.New("degenerate distance")

// CoordinateError represents a latitude or longitude outside its valid range
type CoordinateError struct {
	Field string
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s %f out of range", e.Field, e.Value)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}
