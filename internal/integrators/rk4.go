package integrators

import "github.com/san-kum/pfx3d/internal/dynamo"

// RK4 is the classic four-stage Runge-Kutta method. It is exact for the
// constant-acceleration flight of a pitch up to rounding.
type RK4 struct {
	k     [4]dynamo.State
	probe dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

// stage evaluates the derivative at x + h·k and stores it in out.
func (r *RK4) stage(dyn dynamo.System, x, k dynamo.State, h float64, u dynamo.Control, t float64, out dynamo.State) {
	for i := range x {
		r.probe[i] = x[i] + h*k[i]
	}
	copy(out, dyn.Derive(r.probe, u, t))
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	if len(r.probe) != n {
		for i := range r.k {
			r.k[i] = make(dynamo.State, n)
		}
		r.probe = make(dynamo.State, n)
	}

	copy(r.k[0], dyn.Derive(x, u, t))
	r.stage(dyn, x, r.k[0], dt/2, u, t+dt/2, r.k[1])
	r.stage(dyn, x, r.k[1], dt/2, u, t+dt/2, r.k[2])
	r.stage(dyn, x, r.k[2], dt, u, t+dt, r.k[3])

	next := make(dynamo.State, n)
	for i := range x {
		next[i] = x[i] + dt/6*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return next
}
