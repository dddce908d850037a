package playback

import (
	"github.com/samber/lo"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// PitchView is what the renderer needs to draw one pitch.
type PitchView struct {
	Index          int
	Position       dynamo.Vec3
	Phase          Phase
	PathDone       bool
	ShowStrikeZone bool
	Outcome        telemetry.Outcome
	OutcomeCode    string
	SzBot, SzTop   float64
	Spin           float64 // degrees
	Elapsed        float64
	FlightTime     float64
}

// Frame is a snapshot of the sequence taken after a tick.
type Frame struct {
	Pitches  []PitchView
	Current  int
	Paused   bool
	Looping  bool
	Finished bool
}

// Drawer renders one frame.
type Drawer interface {
	Draw(Frame)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(Frame)

func (f DrawerFunc) Draw(fr Frame) { f(fr) }

// Visible returns the pitches worth drawing: every pitch that has left
// the hand plus the current one.
func (f Frame) Visible() []PitchView {
	return lo.Filter(f.Pitches, func(v PitchView, _ int) bool {
		return v.Phase != NotStarted || v.Index == f.Current
	})
}

// ZoneCount is the number of pitches showing the strike zone.
func (f Frame) ZoneCount() int {
	return lo.CountBy(f.Pitches, func(v PitchView) bool { return v.ShowStrikeZone })
}

func (p *Pitch) view(i int) PitchView {
	return PitchView{
		Index:          i,
		Position:       p.pos,
		Phase:          p.phase,
		PathDone:       p.PathDone(),
		ShowStrikeZone: p.ShowStrikeZone,
		Outcome:        p.Telemetry.Outcome,
		OutcomeCode:    p.Telemetry.OutcomeCode,
		SzBot:          p.Telemetry.SzBot,
		SzTop:          p.Telemetry.SzTop,
		Spin:           p.spin,
		Elapsed:        p.elapsed,
		FlightTime:     p.path.FlightTime(),
	}
}
