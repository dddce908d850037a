package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for telemetry ingestion and playback.
var (
	// ErrMissingField indicates a telemetry record without a required field.
	ErrMissingField = errors.New("dynamo: telemetry field missing")

	// ErrMalformedField indicates a telemetry field that is not a finite number.
	ErrMalformedField = errors.New("dynamo: telemetry field malformed")

	// ErrInvalidState indicates a vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrZeroAcceleration indicates an along-track acceleration too small
	// to derive a finite flight time.
	ErrZeroAcceleration = errors.New("dynamo: along-track acceleration is zero")

	// ErrNoPlateCrossing indicates a trajectory that never reaches the plate front.
	ErrNoPlateCrossing = errors.New("dynamo: trajectory does not reach the plate")

	// ErrEmptySequence indicates a sequence load with no playable pitches.
	ErrEmptySequence = errors.New("dynamo: no playable pitches")

	// ErrUnknownOutcome indicates an outcome code outside ball/strike/in-play.
	ErrUnknownOutcome = errors.New("dynamo: unknown pitch outcome")

	// ErrUnknownPreset indicates a camera or playback preset that does not exist.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")
)

// PitchError ties an error to the pitch that caused it. Index is the
// pitch's position among the valid pitches; Record and ID locate it in
// the feed.
type PitchError struct {
	Index   int
	Record  int
	ID      string
	Wrapped error
}

func (e *PitchError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("pitch %d (record %d, id %s): %v", e.Index, e.Record, e.ID, e.Wrapped)
	}
	if e.Record != e.Index {
		return fmt.Sprintf("pitch %d (record %d): %v", e.Index, e.Record, e.Wrapped)
	}
	return fmt.Sprintf("pitch %d: %v", e.Index, e.Wrapped)
}

func (e *PitchError) Unwrap() error {
	return e.Wrapped
}
