package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

const (
	// PlateFront is the distance along Y from the measurement origin to
	// the front edge of home plate (1.417 ft).
	PlateFront = 1.417 * telemetry.FeetToMeters

	// MinAcceleration is the smallest along-track acceleration (m/s²) for
	// which a flight time is derived.
	MinAcceleration = 1e-6

	// Gravity is standard gravity in m/s².
	Gravity = 9.80665
)

// Trajectory is the closed-form, uniformly accelerated path of one pitch
// from release to the plate front.
type Trajectory struct {
	P0, V0, A dynamo.Vec3

	flightTime float64
}

// NewTrajectory derives the flight of p.
func NewTrajectory(p telemetry.Pitch) (*Trajectory, error) {
	return FromKinematics(p.P0, p.V0, p.A)
}

// FromKinematics derives the flight time at which Y reaches PlateFront.
// It fails when the inputs are not finite, when the along-track
// acceleration is zero, or when the ball never reaches the plate.
func FromKinematics(p0, v0, a dynamo.Vec3) (*Trajectory, error) {
	if !p0.IsValid() || !v0.IsValid() || !a.IsValid() {
		return nil, dynamo.ErrInvalidState
	}
	if math.Abs(a.Y) < MinAcceleration {
		return nil, fmt.Errorf("%w: ay=%g", dynamo.ErrZeroAcceleration, a.Y)
	}

	disc := v0.Y*v0.Y + 2*a.Y*(PlateFront-p0.Y)
	if disc < 0 {
		return nil, fmt.Errorf("%w: ball stops before the plate", dynamo.ErrNoPlateCrossing)
	}
	// The ball keeps moving toward the plate, so the end velocity keeps
	// the negative sign of vy0.
	vEnd := -math.Sqrt(disc)
	t := (vEnd - v0.Y) / a.Y
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return nil, fmt.Errorf("%w: flight time %g", dynamo.ErrNoPlateCrossing, t)
	}

	return &Trajectory{P0: p0, V0: v0, A: a, flightTime: t}, nil
}

// FlightTime is the time in seconds from release to the plate front.
func (tr *Trajectory) FlightTime() float64 { return tr.flightTime }

// Position returns p0 + v0·t + ½·a·t².
func (tr *Trajectory) Position(t float64) dynamo.Vec3 {
	return tr.P0.Add(tr.V0.Scale(t)).Add(tr.A.Scale(0.5 * t * t))
}

// Velocity returns v0 + a·t.
func (tr *Trajectory) Velocity(t float64) dynamo.Vec3 {
	return tr.V0.Add(tr.A.Scale(t))
}

// PlateCrossing is the position at FlightTime.
func (tr *Trajectory) PlateCrossing() dynamo.Vec3 {
	return tr.Position(tr.flightTime)
}

// Movement is the displacement at t caused by everything but gravity:
// X is horizontal break, Z induced vertical break.
func (tr *Trajectory) Movement(t float64) dynamo.Vec3 {
	return tr.A.Sub(dynamo.Vec3{Z: -Gravity}).Scale(0.5 * t * t)
}

// Speed at t in m/s.
func (tr *Trajectory) Speed(t float64) float64 {
	return tr.Velocity(t).Length()
}

func (tr *Trajectory) StateDim() int   { return 6 }
func (tr *Trajectory) ControlDim() int { return 0 }

// Derive implements dynamo.System over [x, y, z, vx, vy, vz].
func (tr *Trajectory) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[3], x[4], x[5], tr.A.X, tr.A.Y, tr.A.Z}
}

// InitialState is the release state for integrators.
func (tr *Trajectory) InitialState() dynamo.State {
	return dynamo.State{tr.P0.X, tr.P0.Y, tr.P0.Z, tr.V0.X, tr.V0.Y, tr.V0.Z}
}
