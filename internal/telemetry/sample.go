package telemetry

import (
	"bytes"
	_ "embed"
)

//go:embed sample_pitches.json
var samplePitches []byte

// Sample returns four pitches of a 2018 at-bat: called strike, in play,
// called strike, ball.
func Sample() ([]Pitch, []error, error) {
	records, err := Decode(bytes.NewReader(samplePitches))
	if err != nil {
		return nil, nil, err
	}
	pitches, errs := Parse(records)
	return pitches, errs, nil
}
