package playback

import (
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// Sequence plays an ordered list of pitches one after another. All
// methods must be called from the goroutine that drives Tick.
type Sequence struct {
	pitches []*Pitch
	index   int
	animate bool
	loop    bool

	hold   time.Duration
	clock  Clock
	logger *zap.Logger

	lastTick time.Time
	resumeAt time.Time // zero when no delayed resume is pending
	finished bool
	restarts int
}

type Option func(*Sequence)

func WithClock(c Clock) Option        { return func(s *Sequence) { s.clock = c } }
func WithHold(d time.Duration) Option { return func(s *Sequence) { s.hold = d } }
func WithLooping(loop bool) Option    { return func(s *Sequence) { s.loop = loop } }
func WithLogger(l *zap.Logger) Option { return func(s *Sequence) { s.logger = l } }

// NewSequence returns an empty, looping, animating sequence.
func NewSequence(opts ...Option) *Sequence {
	s := &Sequence{
		animate: true,
		loop:    true,
		hold:    DefaultHold,
		clock:   SystemClock,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the sequence. Pitches whose flight cannot be derived are
// skipped and reported; the rest load and the sequence restarts.
func (s *Sequence) Load(pitches []telemetry.Pitch) []error {
	var errs []error
	loaded := make([]*Pitch, 0, len(pitches))
	for i, tel := range pitches {
		p, err := NewPitch(tel, s.hold)
		if err != nil {
			err = &dynamo.PitchError{Index: i, Record: tel.Record, ID: tel.ID, Wrapped: err}
			s.logger.Warn("pitch rejected",
				zap.Int("pitch", i),
				zap.Int("record", tel.Record),
				zap.String("id", tel.ID),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		loaded = append(loaded, p)
	}
	if len(loaded) == 0 {
		errs = append(errs, dynamo.ErrEmptySequence)
	}

	s.pitches = loaded
	s.logger.Info("sequence loaded", zap.Int("pitches", len(loaded)), zap.Int("rejected", len(pitches)-len(loaded)))
	s.Restart()
	return errs
}

// Restart rewinds every pitch and resumes immediately.
func (s *Sequence) Restart() {
	s.RestartAfter(0)
}

// RestartAfter rewinds every pitch and holds advancement for delay.
// A later Restart, Pause or Resume cancels a pending delayed resume.
func (s *Sequence) RestartAfter(delay time.Duration) {
	s.animate = false
	s.index = 0
	s.finished = false
	s.restarts++
	single := len(s.pitches) == 1
	for _, p := range s.pitches {
		p.Restart(single)
	}
	s.lastTick = time.Time{}
	s.resumeAt = time.Time{}

	if delay <= 0 {
		s.animate = true
		return
	}
	s.resumeAt = s.clock.Now().Add(delay)
	s.logger.Debug("restart delayed", zap.Duration("delay", delay))
}

func (s *Sequence) Pause() {
	s.animate = false
	s.resumeAt = time.Time{}
}

func (s *Sequence) Resume() {
	s.animate = true
	s.resumeAt = time.Time{}
}

// TogglePause pauses a running sequence and resumes a paused one.
func (s *Sequence) TogglePause() {
	if s.animate {
		s.Pause()
	} else {
		s.Resume()
	}
}

func (s *Sequence) SetLooping(loop bool) { s.loop = loop }
func (s *Sequence) Looping() bool        { return s.loop }
func (s *Sequence) Paused() bool         { return !s.animate }
func (s *Sequence) Finished() bool       { return s.finished }
func (s *Sequence) Len() int             { return len(s.pitches) }
func (s *Sequence) Index() int           { return s.index }

// Restarts counts rewinds, including the ones made by looping.
func (s *Sequence) Restarts() int { return s.restarts }

// Pitch returns the i-th loaded pitch.
func (s *Sequence) Pitch(i int) *Pitch { return s.pitches[i] }

// Current is the pitch being played, or nil once the sequence is exhausted.
func (s *Sequence) Current() *Pitch {
	if s.index < 0 || s.index >= len(s.pitches) {
		return nil
	}
	return s.pitches[s.index]
}

// Tick advances the current pitch by the wall-clock time since the
// previous tick. It does nothing while paused.
func (s *Sequence) Tick() {
	now := s.clock.Now()
	var dt time.Duration
	if !s.lastTick.IsZero() {
		dt = max(now.Sub(s.lastTick), 0)
	}
	s.lastTick = now

	if !s.resumeAt.IsZero() && !now.Before(s.resumeAt) {
		s.resumeAt = time.Time{}
		s.animate = true
		dt = 0
	}

	if !s.animate {
		return
	}
	if s.index >= len(s.pitches) {
		if s.finished && s.loop {
			s.Restart()
		}
		return
	}

	cur := s.pitches[s.index]
	cur.Advance(dt)
	cur.ShowStrikeZone = true
	if !cur.IsDone() {
		return
	}

	cur.ShowStrikeZone = false
	s.index++
	if s.index < len(s.pitches) {
		s.pitches[s.index].ShowStrikeZone = true
		return
	}
	if s.loop {
		s.Restart()
		return
	}
	s.pitches[s.index-1].ShowStrikeZone = true
	s.finished = true
	s.logger.Debug("sequence finished", zap.Int("pitches", len(s.pitches)))
}

// Step ticks and then draws, whether or not the sequence is paused.
func (s *Sequence) Step(d Drawer) {
	s.Tick()
	d.Draw(s.Frame())
}

// Frame snapshots every pitch.
func (s *Sequence) Frame() Frame {
	views := make([]PitchView, len(s.pitches))
	for i, p := range s.pitches {
		views[i] = p.view(i)
	}
	return Frame{
		Pitches:  views,
		Current:  s.index,
		Paused:   !s.animate,
		Looping:  s.loop,
		Finished: s.finished,
	}
}
