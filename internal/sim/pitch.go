package sim

import (
	"context"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/metrics"
	"github.com/san-kum/pfx3d/internal/physics"
	"github.com/san-kum/pfx3d/internal/scene"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// PitchRun is one pitch integrated numerically from release to the plate.
type PitchRun struct {
	Index      int
	Pitch      telemetry.Pitch
	Trajectory *physics.Trajectory
	Result     *dynamo.Result
}

// Drift is the largest distance between the integrated and closed-form
// paths, in meters.
func (r *PitchRun) Drift() float64 {
	if r.Result == nil {
		return 0
	}
	return r.Result.Metrics["drift"]
}

// Positions lists the sampled ball positions.
func (r *PitchRun) Positions() []dynamo.Vec3 {
	if r.Result == nil {
		return nil
	}
	out := make([]dynamo.Vec3, len(r.Result.States))
	for i, x := range r.Result.States {
		out[i] = x.Position()
	}
	return out
}

// SamplePitch integrates p with integ at step dt over its flight time.
// Errors are wrapped in a *dynamo.PitchError carrying index.
func SamplePitch(ctx context.Context, index int, p telemetry.Pitch, integ dynamo.Integrator, dt float64) (*PitchRun, error) {
	tr, err := physics.NewTrajectory(p)
	if err != nil {
		return nil, &dynamo.PitchError{Index: index, Record: p.Record, ID: p.ID, Wrapped: err}
	}

	s := New(tr, integ)
	s.AddMetric(metrics.NewDrift(tr.Position))
	s.AddMetric(metrics.NewApex())
	s.AddMetric(metrics.NewSpeed())
	s.AddMetric(metrics.NewInZone(scene.ZoneHalfWidth, p.SzBot, p.SzTop, scene.BallRadius))

	cfg := dynamo.DefaultConfig()
	cfg.Dt = dt
	cfg.Duration = tr.FlightTime()

	res, err := s.Run(ctx, tr.InitialState(), cfg)
	if err != nil {
		return nil, &dynamo.PitchError{Index: index, Record: p.Record, ID: p.ID, Wrapped: err}
	}
	if len(res.Errors) > 0 {
		return nil, &dynamo.PitchError{Index: index, Record: p.Record, ID: p.ID, Wrapped: res.Errors[0]}
	}

	return &PitchRun{Index: index, Pitch: p, Trajectory: tr, Result: res}, nil
}
