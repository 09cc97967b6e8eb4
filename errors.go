package glyphcurve

import (
	"errors"
	"fmt"
)

var (
	// ErrCuts is returned, wrapped in a [*CutsError], when a cut table
	// violates the invariants of [Piecewise].
	ErrCuts = errors.New("invalid cut table")
	// ErrEmptyTable is returned when a parameterization table holds no
	// interval.
	ErrEmptyTable = errors.New("parameterization table is empty")
	// ErrUnbracketed is returned when a target value cannot be located in a
	// parameterization table.
	ErrUnbracketed = errors.New("target is not bracketed by the table")
	// ErrInvalidStep is returned for interval steps that are not positive.
	ErrInvalidStep = errors.New("step must be positive")
	// ErrInvalidRange is returned for parameter ranges outside of [0, 1] or
	// with min > max.
	ErrInvalidRange = errors.New("invalid parameter range")
	// ErrInvalidContinuity is returned for continuity orders other than G0,
	// G1, and G2.
	ErrInvalidContinuity = errors.New("invalid continuity order")
	// ErrTooFewPoints is returned by fitting functions that are given fewer
	// points than they need.
	ErrTooFewPoints = errors.New("too few points")
	// ErrDegenerateFit is returned when the points do not determine a unique
	// fit, such as a line fit through points that share one X coordinate.
	ErrDegenerateFit = errors.New("degenerate fit")
)

// CutsError describes why a cut table was rejected.
type CutsError struct {
	// Index of the offending cut, or -1 if the table as a whole is wrong.
	Index  int
	Reason string
}

func (e *CutsError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrCuts, e.Reason)
	}
	return fmt.Sprintf("%s: cut %d: %s", ErrCuts, e.Index, e.Reason)
}

func (e *CutsError) Unwrap() error {
	return ErrCuts
}
