package nc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingData indicates that classification or save was attempted
	// with no measurement loaded.
	ErrMissingData = errors.New("nc: no measurement data")

	// ErrShape indicates a measurement whose length does not match the
	// octave-band count.
	ErrShape = errors.New("nc: measurement shape mismatch")

	// ErrNoSatisfyingCurve indicates a spectrum that exceeds even the
	// loosest curve, NC-60.
	ErrNoSatisfyingCurve = errors.New("nc: spectrum exceeds the loosest NC curve (NC-60)")

	// ErrMalformedFile indicates a measurement file missing the required
	// columns or rows.
	ErrMalformedFile = errors.New("nc: malformed measurement file")
)

// ShapeError reports the actual and expected measurement lengths.
// It unwraps to ErrShape.
type ShapeError struct {
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nc: measurement has %d levels, want %d", e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShape }
