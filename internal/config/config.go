package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHold         = 1.0
	DefaultRestartDelay = 0.0
	DefaultFPS          = 60
	DefaultCamera       = "catcher"
	DefaultTheme        = "night"
	DefaultWidth        = 80
	DefaultHeight       = 24
	DefaultIntegrator   = "rk4"
	DefaultDt           = 0.005
	DefaultDataDir      = "runs"
	DefaultLogLevel     = "info"
)

type Config struct {
	Telemetry string         `yaml:"telemetry"`
	Select    string         `yaml:"select"` // JSONPath to the pitch records
	Playback  PlaybackConfig `yaml:"playback"`
	View      ViewConfig     `yaml:"view"`
	Sim       SimConfig      `yaml:"sim"`
	DataDir   string         `yaml:"data_dir"`
	Log       LogConfig      `yaml:"log"`
}

type PlaybackConfig struct {
	Loop         bool    `yaml:"loop"`
	Hold         float64 `yaml:"hold"`          // seconds
	RestartDelay float64 `yaml:"restart_delay"` // seconds
	FPS          int     `yaml:"fps"`
}

type ViewConfig struct {
	Camera   string `yaml:"camera"`
	Theme    string `yaml:"theme"`
	Outfield bool   `yaml:"outfield"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

type SimConfig struct {
	Integrator string  `yaml:"integrator"`
	Dt         float64 `yaml:"dt"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Loop:         true,
			Hold:         DefaultHold,
			RestartDelay: DefaultRestartDelay,
			FPS:          DefaultFPS,
		},
		View: ViewConfig{
			Camera: DefaultCamera,
			Theme:  DefaultTheme,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Sim: SimConfig{
			Integrator: DefaultIntegrator,
			Dt:         DefaultDt,
		},
		DataDir: DefaultDataDir,
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Playback.Hold < 0:
		return fmt.Errorf("playback.hold must not be negative, got %v", c.Playback.Hold)
	case c.Playback.RestartDelay < 0:
		return fmt.Errorf("playback.restart_delay must not be negative, got %v", c.Playback.RestartDelay)
	case c.Playback.FPS <= 0:
		return fmt.Errorf("playback.fps must be positive, got %d", c.Playback.FPS)
	case c.Sim.Dt <= 0:
		return fmt.Errorf("sim.dt must be positive, got %v", c.Sim.Dt)
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("view size must be positive, got %dx%d", c.View.Width, c.View.Height)
	}
	return nil
}

func (c *Config) Hold() time.Duration { return seconds(c.Playback.Hold) }

func (c *Config) RestartDelay() time.Duration { return seconds(c.Playback.RestartDelay) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
