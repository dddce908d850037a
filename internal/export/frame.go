package export

import (
	"errors"
	"time"

	"github.com/san-kum/pfx3d/internal/playback"
	"github.com/san-kum/pfx3d/internal/telemetry"
	"github.com/san-kum/pfx3d/internal/viz"
)

const maxSnapshotTicks = 100000

// Snapshot plays pitches once at 60 fps of simulated time and renders the
// final frame, where every pitch rests at the plate in its outcome color.
func Snapshot(pitches []telemetry.Pitch, cam viz.Camera, opts viz.SceneOptions, width, height int) (*viz.Canvas, error) {
	seq := playback.NewSequence(
		playback.WithClock(playback.NewStepClock(time.Second/60)),
		playback.WithLooping(false),
	)
	errs := seq.Load(pitches)
	if seq.Len() == 0 {
		return nil, errors.Join(errs...)
	}

	for i := 0; i < maxSnapshotTicks && !seq.Finished(); i++ {
		seq.Tick()
	}

	canvas := viz.NewCanvas(width, height)
	viz.Render3D(canvas, viz.BuildWireframe(seq.Frame(), opts, nil), cam)
	return canvas, nil
}
