package playback

import "time"

// Clock supplies wall-clock time to the sequence.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// StepClock advances by a fixed step on every read. It drives a sequence
// faster than real time, e.g. to render a frame offline.
type StepClock struct {
	t    time.Time
	step time.Duration
}

func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{t: time.Unix(0, 0), step: step}
}

func (c *StepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}
