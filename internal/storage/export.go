package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/pfx3d/internal/sim"
)

type ExportPitch struct {
	PitchSummary
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

type ExportData struct {
	Source     string        `json:"source"`
	Integrator string        `json:"integrator"`
	Dt         float64       `json:"dt"`
	Pitches    []ExportPitch `json:"pitches"`
}

// ExportJSON writes runs with their full sample tracks as indented JSON.
func ExportJSON(w io.Writer, source, integrator string, dt float64, runs []*sim.PitchRun) error {
	data := ExportData{
		Source:     source,
		Integrator: integrator,
		Dt:         dt,
		Pitches:    make([]ExportPitch, 0, len(runs)),
	}

	for _, r := range runs {
		if r == nil {
			continue
		}
		p := ExportPitch{
			PitchSummary: summarize(r),
			Times:        r.Result.Times,
			States:       make([][]float64, len(r.Result.States)),
		}
		for i, s := range r.Result.States {
			p.States[i] = s
		}
		data.Pitches = append(data.Pitches, p)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
