package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/physics"
	"github.com/san-kum/pfx3d/internal/sim"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

const (
	mToIn  = 1 / 0.0254
	mpsMph = 2.2369362921
)

func newFlightCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "flight [file]",
		Short: "flight time, plate crossing and break per pitch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, _, err := loadPitches(args)
			if err != nil {
				return err
			}

			var runs []*sim.PitchRun
			if verify {
				runs, err = sim.SampleAll(cmd.Context(), pitches, cfg.Sim.Integrator, cfg.Sim.Dt, 0)
				if err != nil {
					log.Logger.Warn("sampling failed", zap.Error(err))
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			header := "#\tTYPE\tRESULT\tFLIGHT\tPLATE X\tPLATE Z\tH BREAK\tV BREAK\tEND MPH"
			if verify {
				header += "\tDRIFT"
			}
			fmt.Fprintln(w, header)

			for i, p := range pitches {
				tr, err := physics.NewTrajectory(p)
				if err != nil {
					fmt.Fprintf(w, "%d\t%s\t%s\terror: %v\n", i+1, p.PitchType, p.Outcome, err)
					continue
				}
				ft := tr.FlightTime()
				plate := tr.PlateCrossing()
				brk := tr.Movement(ft)
				fmt.Fprintf(w, "%d\t%s\t%s\t%.3fs\t%+.1fin\t%.1fin\t%+.1fin\t%+.1fin\t%.1f",
					i+1, p.PitchType, p.Outcome, ft,
					plate.X*mToIn, plate.Z*mToIn, brk.X*mToIn, brk.Z*mToIn,
					tr.Speed(ft)*mpsMph)
				if verify {
					if i < len(runs) && runs[i] != nil {
						fmt.Fprintf(w, "\t%.2e m", runs[i].Drift())
					} else {
						fmt.Fprint(w, "\t-")
					}
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the closed form by numeric integration")
	return cmd
}

func newPlotCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot height and lateral position over one pitch's flight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, _, err := loadPitches(args)
			if err != nil {
				return err
			}
			if index < 1 || index > len(pitches) {
				return fmt.Errorf("pitch %d out of range 1..%d", index, len(pitches))
			}
			return plotPitch(cmd.Context(), index-1, pitches[index-1])
		},
	}

	cmd.Flags().IntVar(&index, "pitch", 1, "pitch number (1-based)")
	return cmd
}

func plotPitch(ctx context.Context, i int, p telemetry.Pitch) error {
	integ, err := newIntegrator()
	if err != nil {
		return err
	}
	run, err := sim.SamplePitch(ctx, i, p, integ, cfg.Sim.Dt)
	if err != nil {
		return err
	}

	pos := run.Positions()
	heights := make([]float64, len(pos))
	lateral := make([]float64, len(pos))
	for j, q := range pos {
		heights[j] = q.Z
		lateral[j] = q.X
	}

	fmt.Printf("pitch %d: %s %s, %.3fs, %d samples\n\n",
		i+1, p.PitchType, p.Outcome, run.Trajectory.FlightTime(), len(pos))
	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height z (m) from release to plate"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(lateral,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("lateral x (m) from release to plate"),
	))
	return nil
}
