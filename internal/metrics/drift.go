package metrics

import (
	"math"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

// Reference is the exact position at time t.
type Reference func(t float64) dynamo.Vec3

// Drift is the largest distance between an observed position and the
// reference, in meters.
type Drift struct {
	name     string
	ref      Reference
	maxDrift float64
	last     float64
	samples  int
}

func NewDrift(ref Reference) *Drift {
	return &Drift{
		name: "drift",
		ref:  ref,
	}
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(x dynamo.State, u dynamo.Control, t float64) {
	d.last = x.Position().Sub(d.ref(t)).Length()
	d.maxDrift = math.Max(d.maxDrift, d.last)
	d.samples++
}

func (d *Drift) Value() float64 { return d.maxDrift }

// Final is the drift at the last observation.
func (d *Drift) Final() float64 { return d.last }

func (d *Drift) Reset() {
	d.maxDrift = 0
	d.last = 0
	d.samples = 0
}

// Apex is the greatest height observed.
type Apex struct {
	name    string
	apex    float64
	samples int
}

func NewApex() *Apex { return &Apex{name: "apex"} }

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(x dynamo.State, u dynamo.Control, t float64) {
	z := x.Position().Z
	if a.samples == 0 || z > a.apex {
		a.apex = z
	}
	a.samples++
}

func (a *Apex) Value() float64 { return a.apex }

func (a *Apex) Reset() {
	a.apex = 0
	a.samples = 0
}

// Speed is the speed at the last observation, in m/s. The state must
// carry velocity in components 3..5.
type Speed struct {
	name  string
	speed float64
}

func NewSpeed() *Speed { return &Speed{name: "speed"} }

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if len(x) < 6 {
		return
	}
	s.speed = dynamo.Vec3{X: x[3], Y: x[4], Z: x[5]}.Length()
}

func (s *Speed) Value() float64 { return s.speed }

func (s *Speed) Reset() { s.speed = 0 }
