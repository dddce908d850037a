package telemetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

// FeetToMeters converts the feed's feet-based values to field meters.
const FeetToMeters = 0.3048

// Outcome is the umpire's classification of a pitch.
type Outcome int

const (
	Unknown Outcome = iota
	Ball
	Strike
	InPlay
)

// ParseOutcome maps a feed outcome code (B, S, X) to an Outcome.
func ParseOutcome(code string) Outcome {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "B":
		return Ball
	case "S":
		return Strike
	case "X":
		return InPlay
	default:
		return Unknown
	}
}

func (o Outcome) String() string {
	switch o {
	case Ball:
		return "ball"
	case Strike:
		return "strike"
	case InPlay:
		return "in play"
	default:
		return "unknown"
	}
}

// Code returns the feed code for o, or "?" when unknown.
func (o Outcome) Code() string {
	switch o {
	case Ball:
		return "B"
	case Strike:
		return "S"
	case InPlay:
		return "X"
	default:
		return "?"
	}
}

// Record is one raw pitch from the feed, keyed by PITCHf/x field name.
// Values are numbers or numeric strings.
type Record map[string]any

// Required kinematic and zone fields, in feet and feet per second.
var requiredFields = []string{
	"x0", "y0", "z0",
	"vx0", "vy0", "vz0",
	"ax", "ay", "az",
	"sz_bot", "sz_top",
}

// Pitch is one validated pitch in field meters. It is never modified after
// FromRecord returns it.
type Pitch struct {
	Record      int // position in the feed, before rejected records are dropped
	ID          string
	Description string
	PitchType   string
	StartSpeed  float64 // mph, as reported

	P0 dynamo.Vec3 // release position
	V0 dynamo.Vec3 // release velocity
	A  dynamo.Vec3 // constant acceleration

	SzBot float64
	SzTop float64

	Outcome     Outcome
	OutcomeCode string
}

// FieldError reports which field of which record was rejected.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FromRecord validates rec and converts it to meters. index is the
// record's position in the feed.
func FromRecord(index int, rec Record) (Pitch, error) {
	vals := make(map[string]float64, len(requiredFields))
	for _, f := range requiredFields {
		raw, ok := rec[f]
		if !ok || raw == nil {
			return Pitch{}, &FieldError{Index: index, Field: f, Err: dynamo.ErrMissingField}
		}
		v, err := toFloat(raw)
		if err != nil {
			return Pitch{}, &FieldError{Index: index, Field: f, Err: fmt.Errorf("%w: %v", dynamo.ErrMalformedField, err)}
		}
		vals[f] = v * FeetToMeters
	}

	p := Pitch{
		Record:      index,
		ID:          stringField(rec, "id"),
		Description: stringField(rec, "des"),
		PitchType:   stringField(rec, "pitch_type"),
		P0:          dynamo.Vec3{X: vals["x0"], Y: vals["y0"], Z: vals["z0"]},
		V0:          dynamo.Vec3{X: vals["vx0"], Y: vals["vy0"], Z: vals["vz0"]},
		A:           dynamo.Vec3{X: vals["ax"], Y: vals["ay"], Z: vals["az"]},
		SzBot:       vals["sz_bot"],
		SzTop:       vals["sz_top"],
		OutcomeCode: stringField(rec, "type"),
	}
	p.Outcome = ParseOutcome(p.OutcomeCode)
	if raw, ok := rec["start_speed"]; ok {
		if v, err := toFloat(raw); err == nil {
			p.StartSpeed = v
		}
	}
	if p.SzTop < p.SzBot {
		return Pitch{}, &FieldError{Index: index, Field: "sz_top", Err: fmt.Errorf("%w: top below bottom", dynamo.ErrMalformedField)}
	}
	return p, nil
}

func toFloat(raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, err
		}
		v = f
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite: %v", v)
	}
	return v, nil
}

func stringField(rec Record, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
