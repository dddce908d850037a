package sim

import "github.com/san-kum/pfx3d/internal/dynamo"

// Metric accumulates a scalar over every recorded state of a run.
type Metric interface {
	Name() string
	Observe(x dynamo.State, u dynamo.Control, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x dynamo.State, t float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(x dynamo.State, t float64)

func (f ObserverFunc) OnStep(x dynamo.State, t float64) { f(x, t) }
