// Package optim searches sampling settings for the coarsest step that
// still tracks the closed-form flight.
package optim

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/san-kum/pfx3d/internal/sim"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// Candidate is one integrator/step pair and the worst drift it produced
// over every pitch.
type Candidate struct {
	Integrator string
	Dt         float64
	MaxDrift   float64
	Err        error
}

// Within reports whether the candidate sampled every pitch and stayed
// under tol.
func (c Candidate) Within(tol float64) bool {
	return c.Err == nil && c.MaxDrift <= tol
}

type StepSearch struct {
	integrators []string
	steps       []float64
}

// NewStepSearch tries every integrator against every step. Steps are
// searched from coarsest to finest.
func NewStepSearch(integrators []string, steps []float64) *StepSearch {
	s := append([]float64(nil), steps...)
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))
	return &StepSearch{integrators: integrators, steps: s}
}

// Search samples pitches for each pair and returns all candidates plus,
// per integrator, the coarsest step within tol. An integrator that never
// meets tol is absent from best.
func (g *StepSearch) Search(ctx context.Context, pitches []telemetry.Pitch, tol float64) (all []Candidate, best map[string]Candidate, err error) {
	best = make(map[string]Candidate)
	for _, name := range g.integrators {
		for _, dt := range g.steps {
			if err := ctx.Err(); err != nil {
				return all, best, err
			}
			c := evaluate(ctx, pitches, name, dt)
			all = append(all, c)
			if _, found := best[name]; !found && c.Within(tol) {
				best[name] = c
			}
		}
	}
	return all, best, nil
}

func evaluate(ctx context.Context, pitches []telemetry.Pitch, integrator string, dt float64) Candidate {
	c := Candidate{Integrator: integrator, Dt: dt}
	runs, err := sim.SampleAll(ctx, pitches, integrator, dt, 0)
	if err != nil {
		c.Err = err
		c.MaxDrift = math.Inf(1)
		return c
	}
	for _, r := range runs {
		c.MaxDrift = math.Max(c.MaxDrift, r.Drift())
	}
	if len(runs) == 0 {
		c.Err = errors.New("no pitches sampled")
	}
	return c
}
