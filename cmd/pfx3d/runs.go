package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pfx3d/internal/config"
	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/export"
	"github.com/san-kum/pfx3d/internal/integrators"
	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/sim"
	"github.com/san-kum/pfx3d/internal/storage"
	"github.com/san-kum/pfx3d/internal/viz"
)

func newIntegrator() (dynamo.Integrator, error) {
	return integrators.New(cfg.Sim.Integrator)
}

func newExportCmd() *cobra.Command {
	var jsonOut string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "sample every pitch and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, source, err := loadPitches(args)
			if err != nil {
				return err
			}

			runs, err := sim.SampleAll(cmd.Context(), pitches, cfg.Sim.Integrator, cfg.Sim.Dt, 0)
			if err != nil {
				log.Logger.Warn("some pitches were not sampled", zap.Error(err))
			}

			if jsonOut != "" {
				out := os.Stdout
				if jsonOut != "-" {
					f, err := os.Create(jsonOut)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				return storage.ExportJSON(out, source, cfg.Sim.Integrator, cfg.Sim.Dt, runs)
			}

			st := storage.New(cfg.DataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.Save(source, cfg.Sim.Integrator, cfg.Sim.Dt, runs)
			if err != nil {
				return err
			}
			log.Logger.Info("run saved", zap.String("run", runID), zap.Int("pitches", len(pitches)))
			fmt.Println(runID)
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonOut, "json", "", "write JSON to this file (- for stdout) instead of the run store")
	return cmd
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(cfg.DataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSOURCE\tTIME\tPITCHES\tDT\tINTEG\tMAX DRIFT")
			for _, run := range runs {
				drift := 0.0
				for _, p := range run.Pitches {
					drift = max(drift, p.Metrics["drift"])
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\t%.2e\n",
					run.ID,
					run.Source,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					len(run.Pitches),
					run.Dt,
					run.Integrator,
					drift,
				)
			}
			return w.Flush()
		},
	}
}

func newSVGCmd(defaults *config.Config) *cobra.Command {
	var (
		out        string
		viewCamera string
	)

	cmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "draw every pitch path as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, _, err := loadPitches(args)
			if err != nil {
				return err
			}

			var svg string
			if viewCamera != "" {
				cam, err := viz.CameraPreset(viewCamera)
				if err != nil {
					return err
				}
				opts := viz.SceneOptions{
					Outfield:   cfg.View.Outfield,
					Background: viz.GetTheme(cfg.View.Theme).Clear(),
				}
				canvas, err := export.Snapshot(pitches, cam, opts, cfg.View.Width, cfg.View.Height)
				if err != nil {
					return err
				}
				svg = export.CanvasToSVG(canvas, 3, "#ffffff")
			} else {
				runs, err := sim.SampleAll(cmd.Context(), pitches, cfg.Sim.Integrator, cfg.Sim.Dt, 0)
				if err != nil {
					log.Logger.Warn("some pitches were not sampled", zap.Error(err))
				}
				svg = export.PathsSVG(export.FromRuns(runs), 800, 600)
			}

			if out == "" || out == "-" {
				_, err = fmt.Print(svg)
				return err
			}
			return os.WriteFile(out, []byte(svg), 0644)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output file (default stdout)")
	f.StringVar(&viewCamera, "view", "", "render the final frame from this camera instead of side/top paths")
	f.Bool("outfield", defaults.View.Outfield, "draw the outfield in --view mode")
	f.String("theme", defaults.View.Theme, "theme whose background tints the zone in --view mode")
	f.Int("width", defaults.View.Width, "canvas width in cells for --view")
	f.Int("height", defaults.View.Height, "canvas height in cells for --view")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list playback presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCAMERA\tLOOP\tHOLD\tRESTART DELAY\tOUTFIELD")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%v\t%.1fs\t%.1fs\t%v\n",
					name, p.View.Camera, p.Playback.Loop, p.Playback.Hold, p.Playback.RestartDelay, p.View.Outfield)
			}
			return w.Flush()
		},
	}
}
