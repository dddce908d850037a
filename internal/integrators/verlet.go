package integrators

import "github.com/san-kum/pfx3d/internal/dynamo"

// The second-order steppers below treat the state as positions followed
// by the matching velocities, as in [x, y, z, vx, vy, vz].

// Verlet is velocity Verlet: a full position step from the current
// acceleration, then the velocity from the mean of old and new.
type Verlet struct {
	moved dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	if len(v.moved) != n {
		v.moved = make(dynamo.State, n)
	}

	acc := dyn.Derive(x, u, t)[half:]
	next := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		next[i] = x[i] + dt*(x[half+i]+dt/2*acc[i])
		v.moved[i] = next[i]
		v.moved[half+i] = x[half+i]
	}

	accNext := dyn.Derive(v.moved, u, t+dt)[half:]
	for i := 0; i < half; i++ {
		next[half+i] = x[half+i] + dt/2*(acc[i]+accNext[i])
	}
	return next
}

// Leapfrog is kick-drift-kick: half a velocity step, a full position step
// at that velocity, then the second half kick.
type Leapfrog struct {
	mid dynamo.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	if len(l.mid) != n {
		l.mid = make(dynamo.State, n)
	}

	acc := dyn.Derive(x, u, t)[half:]
	for i := 0; i < half; i++ {
		l.mid[half+i] = x[half+i] + dt/2*acc[i]
		l.mid[i] = x[i] + dt*l.mid[half+i]
	}

	next := make(dynamo.State, n)
	accNext := dyn.Derive(l.mid, u, t+dt)[half:]
	for i := 0; i < half; i++ {
		next[i] = l.mid[i]
		next[half+i] = l.mid[half+i] + dt/2*accNext[i]
	}
	return next
}
