package sim

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/san-kum/pfx3d/internal/integrators"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

// SampleAll integrates every pitch on up to workers goroutines. Runs come
// back in input order; a pitch that fails leaves a nil slot and its error
// is joined into the returned error.
func SampleAll(ctx context.Context, pitches []telemetry.Pitch, integratorName string, dt float64, workers int) ([]*PitchRun, error) {
	if _, err := integrators.New(integratorName); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runs := make([]*PitchRun, len(pitches))
	errs := make([]error, len(pitches))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range pitches {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// integrators keep scratch buffers, so each run gets its own
			integ, err := integrators.New(integratorName)
			if err != nil {
				errs[idx] = err
				return
			}
			runs[idx], errs[idx] = SamplePitch(ctx, idx, pitches[idx], integ, dt)
		}(i)
	}

	wg.Wait()

	return runs, errors.Join(errs...)
}
