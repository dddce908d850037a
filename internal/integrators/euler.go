package integrators

import "github.com/san-kum/pfx3d/internal/dynamo"

// Euler is the explicit first-order method. Its drift grows linearly with
// the step, which makes it the baseline in integrator comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	next := make(dynamo.State, len(x))
	for i, xi := range x {
		next[i] = xi + dt*dx[i]
	}
	return next
}
