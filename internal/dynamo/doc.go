// Package dynamo provides the shared primitives of the pitch simulator.
//
//   - [Vec3]: point or direction in field space (meters)
//   - [State]: flat state vector used by integrators
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//
// Field space has its origin at the point of home plate, Y running toward
// the pitching rubber and Z up. Telemetry feeds measure release position
// from the same origin.
//
// Errors returned by the other packages wrap the sentinels declared here,
// so callers can test them with [errors.Is]:
//
//	if errors.Is(err, dynamo.ErrZeroAcceleration) {
//	    // reject the pitch
//	}
package dynamo
