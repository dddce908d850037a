package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/pfx3d/internal/config"
	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/playback"
	"github.com/san-kum/pfx3d/internal/viz"
)

func newLiveCmd(defaults *config.Config) *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "live [file]",
		Short: "play pitches in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, source, err := loadPitches(args)
			if err != nil {
				return err
			}

			opts := viz.PlayerOptions{
				Title:        source,
				Width:        cfg.View.Width,
				Height:       cfg.View.Height,
				FPS:          cfg.Playback.FPS,
				Camera:       cfg.View.Camera,
				Theme:        cfg.View.Theme,
				Outfield:     cfg.View.Outfield,
				RestartDelay: cfg.RestartDelay(),
				Logger:       log.Logger,
			}
			seqOpts := []playback.Option{
				playback.WithHold(cfg.Hold()),
				playback.WithLogger(log.Logger),
			}

			if pick {
				return viz.RunPicker(pitches, opts, cfg.Playback.Loop, seqOpts...)
			}

			seq := playback.NewSequence(append(seqOpts, playback.WithLooping(cfg.Playback.Loop))...)
			if errs := seq.Load(pitches); seq.Len() == 0 {
				return errors.Join(errs...)
			}
			return viz.Run(seq, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&pick, "pick", false, "choose pitches and settings before playing")
	f.Bool("loop", defaults.Playback.Loop, "loop the sequence")
	f.Float64("hold", defaults.Playback.Hold, "seconds a pitch rests at the plate")
	f.Float64("restart-delay", defaults.Playback.RestartDelay, "seconds to wait after a restart key")
	f.Int("fps", defaults.Playback.FPS, "frame rate")
	f.String("camera", defaults.View.Camera, "camera preset ("+strings.Join(viz.CameraPresets(), ", ")+")")
	f.String("theme", defaults.View.Theme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	f.Bool("outfield", defaults.View.Outfield, "draw the outfield")
	f.Int("width", defaults.View.Width, "canvas width in cells")
	f.Int("height", defaults.View.Height, "canvas height in cells")
	return cmd
}
