// Package physics models a pitch as uniformly accelerated flight.
//
// A [Trajectory] is built from release position, velocity and constant
// acceleration (all in field meters) and knows when the ball reaches
// [PlateFront]:
//
//	tr, err := physics.NewTrajectory(pitch)
//	if err != nil {
//	    return err // zero along-track acceleration, or no crossing
//	}
//	p := tr.Position(tr.FlightTime()) // p.Y == PlateFront
//
// Trajectory also implements [dynamo.System] over [x, y, z, vx, vy, vz],
// so the integrators can sample the same flight numerically and be
// checked against the closed form.
package physics
