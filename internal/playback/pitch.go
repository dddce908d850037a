package playback

import (
	"math"
	"time"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/physics"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

const (
	// DefaultHold is how long a pitch rests at the plate before the
	// sequence moves on.
	DefaultHold = time.Second

	// SpinDegPerFrame is the display rotation applied each frame in flight.
	SpinDegPerFrame = 25.0
)

// Phase is the lifecycle of one pitch.
type Phase int

const (
	NotStarted Phase = iota
	InFlight
	PathDoneHolding
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case InFlight:
		return "in flight"
	case PathDoneHolding:
		return "at plate"
	case PhaseDone:
		return "done"
	default:
		return "invalid"
	}
}

// Path is the flight a Pitch plays back.
type Path interface {
	Position(t float64) dynamo.Vec3
	FlightTime() float64
}

// Pitch is the runtime state of one pitch. It is only touched from the
// tick path.
type Pitch struct {
	Telemetry telemetry.Pitch

	path Path
	hold time.Duration

	phase   Phase
	elapsed float64 // seconds of flight, clamped to the flight time
	held    time.Duration
	pos     dynamo.Vec3
	spin    float64

	// ShowStrikeZone is owned by the sequence and has its own lifecycle.
	ShowStrikeZone bool
}

// NewPitch derives the trajectory of tel. A pitch that cannot reach the
// plate is rejected here so it never enters a sequence.
func NewPitch(tel telemetry.Pitch, hold time.Duration) (*Pitch, error) {
	tr, err := physics.NewTrajectory(tel)
	if err != nil {
		return nil, err
	}
	return newPitch(tel, tr, hold), nil
}

func newPitch(tel telemetry.Pitch, path Path, hold time.Duration) *Pitch {
	if hold < 0 {
		hold = 0
	}
	p := &Pitch{Telemetry: tel, path: path, hold: hold}
	p.Restart(false)
	return p
}

// Restart returns the pitch to the release point from any phase.
func (p *Pitch) Restart(showZone bool) {
	p.phase = NotStarted
	p.elapsed = 0
	p.held = 0
	p.spin = 0
	p.pos = p.path.Position(0)
	p.ShowStrikeZone = showZone
}

// Advance moves the pitch forward by dt of wall-clock time.
func (p *Pitch) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	switch p.phase {
	case NotStarted:
		p.phase = InFlight
		fallthrough
	case InFlight:
		p.elapsed += dt.Seconds()
		p.spin = math.Mod(p.spin+SpinDegPerFrame, 360)
		if flight := p.path.FlightTime(); p.elapsed >= flight {
			// time past the plate counts toward the hold
			over := time.Duration((p.elapsed - flight) * float64(time.Second))
			p.elapsed = flight
			p.phase = PathDoneHolding
			p.holdFor(over)
		}
		p.pos = p.path.Position(p.elapsed)
	case PathDoneHolding:
		p.holdFor(dt)
	case PhaseDone:
	}
}

func (p *Pitch) holdFor(dt time.Duration) {
	p.held += dt
	if p.held >= p.hold {
		p.phase = PhaseDone
	}
}

func (p *Pitch) Phase() Phase               { return p.phase }
func (p *Pitch) Position() dynamo.Vec3      { return p.pos }
func (p *Pitch) Elapsed() float64           { return p.elapsed }
func (p *Pitch) FlightTime() float64        { return p.path.FlightTime() }
func (p *Pitch) Spin() float64              { return p.spin }
func (p *Pitch) Outcome() telemetry.Outcome { return p.Telemetry.Outcome }

// PathDone reports that the ball has reached the plate front.
func (p *Pitch) PathDone() bool { return p.phase >= PathDoneHolding }

// IsDone reports that the post-arrival hold is over.
func (p *Pitch) IsDone() bool { return p.phase == PhaseDone }
