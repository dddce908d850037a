package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/san-kum/pfx3d/internal/config"
	"github.com/san-kum/pfx3d/internal/log"
	"github.com/san-kum/pfx3d/internal/telemetry"
)

const envPrefix = "PFX3D"

var (
	cfgFile    string
	presetName string
	cfg        *config.Config
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pfx3d",
		Short:         "3D pitch trajectory playback",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd, viper.GetViper())
			c, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			cfg = c
			return initLogger(cmd, c)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}

	defaults := config.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml)")
	pf.StringVar(&presetName, "preset", "", "start from a named preset")
	pf.String("data", defaults.DataDir, "run store directory")
	pf.String("integrator", defaults.Sim.Integrator, "integrator for sampled paths")
	pf.Float64("dt", defaults.Sim.Dt, "sample step in seconds")
	pf.String("select", "", "JSONPath selecting pitch records in the feed")
	pf.String("log-file", "", "log file; the live view logs nowhere without it")
	pf.String("log-level", defaults.Log.Level, "log level")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		newLiveCmd(defaults),
		newFlightCmd(),
		newPlotCmd(),
		newExportCmd(),
		newRunsCmd(),
		newSVGCmd(defaults),
		newPresetsCmd(),
		newBenchCmd(),
	)
	return rootCmd
}

// bindFlags fills every flag the user did not set from its PFX3D_*
// environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "could not set flag %s: %v\n", f.Name, err)
			}
		}
	})
}

// resolveConfig layers defaults, then a preset or config file, then any
// flag that was set on the command line or through the environment.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if presetName != "" {
		if c = config.GetPreset(presetName); c == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", presetName, config.ListPresets())
		}
	}
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		c = loaded
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("select", func() { c.Select, _ = fs.GetString("select") })
	set("data", func() { c.DataDir, _ = fs.GetString("data") })
	set("integrator", func() { c.Sim.Integrator, _ = fs.GetString("integrator") })
	set("dt", func() { c.Sim.Dt, _ = fs.GetFloat64("dt") })
	set("log-file", func() { c.Log.File, _ = fs.GetString("log-file") })
	set("log-level", func() { c.Log.Level, _ = fs.GetString("log-level") })
	set("loop", func() { c.Playback.Loop, _ = fs.GetBool("loop") })
	set("hold", func() { c.Playback.Hold, _ = fs.GetFloat64("hold") })
	set("restart-delay", func() { c.Playback.RestartDelay, _ = fs.GetFloat64("restart-delay") })
	set("fps", func() { c.Playback.FPS, _ = fs.GetInt("fps") })
	set("camera", func() { c.View.Camera, _ = fs.GetString("camera") })
	set("theme", func() { c.View.Theme, _ = fs.GetString("theme") })
	set("outfield", func() { c.View.Outfield, _ = fs.GetBool("outfield") })
	set("width", func() { c.View.Width, _ = fs.GetInt("width") })
	set("height", func() { c.View.Height, _ = fs.GetInt("height") })

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func initLogger(cmd *cobra.Command, c *config.Config) error {
	switch {
	case c.Log.File != "":
		return log.InitFileLogger(c.Log.File, c.Log.Level)
	case cmd.Name() == "live":
		return nil
	default:
		return log.InitConsoleLogger(c.Log.Level)
	}
}

// loadPitches reads the feed named by args, the config, or the bundled
// sample, in that order. Rejected records are logged and skipped.
func loadPitches(args []string) ([]telemetry.Pitch, string, error) {
	path := cfg.Telemetry
	if len(args) > 0 {
		path = args[0]
	}
	source := path
	if source == "" {
		source = "sample"
	}

	var (
		pitches []telemetry.Pitch
		errs    []error
		err     error
	)
	if cfg.Select != "" && path != "" {
		pitches, errs, err = telemetry.LoadSelect(path, cfg.Select)
	} else {
		pitches, errs, err = telemetry.Load(path)
	}
	if err != nil {
		return nil, source, err
	}
	for _, e := range errs {
		log.Logger.Warn("record rejected", zap.String("source", source), zap.Error(e))
	}
	if len(pitches) == 0 {
		return nil, source, fmt.Errorf("%s: no valid pitch records", source)
	}
	return pitches, source, nil
}
