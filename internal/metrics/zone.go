package metrics

import (
	"math"

	"github.com/san-kum/pfx3d/internal/dynamo"
)

// InZone reports 1 when the last observed position lies within the
// strike zone (widened by the ball radius) and 0 otherwise.
type InZone struct {
	name      string
	halfWidth float64
	bottom    float64
	top       float64
	radius    float64
	inside    bool
}

func NewInZone(halfWidth, bottom, top, radius float64) *InZone {
	return &InZone{
		name:      "in_zone",
		halfWidth: halfWidth,
		bottom:    bottom,
		top:       top,
		radius:    radius,
	}
}

func (z *InZone) Name() string { return z.name }

func (z *InZone) Observe(x dynamo.State, u dynamo.Control, t float64) {
	p := x.Position()
	z.inside = math.Abs(p.X) <= z.halfWidth+z.radius &&
		p.Z >= z.bottom-z.radius && p.Z <= z.top+z.radius
}

func (z *InZone) Value() float64 {
	if z.inside {
		return 1
	}
	return 0
}

func (z *InZone) Reset() { z.inside = false }
